package request

// PredictionRequest represents the request body for a price forecast.
// Dates are informational and only checked for format and order; the
// forecast always runs from the latest available price.
type PredictionRequest struct {
	Stock            string  `json:"stock" validate:"required,max=32"`
	StartDate        string  `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string  `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	InvestmentAmount float64 `json:"investmentAmount" validate:"gt=0"`
	Horizon          int     `json:"horizon,omitempty" default:"30" validate:"gte=1,lte=365"`
}
