package request

// SentimentRequest represents the request body for a sentiment backtest.
// The period is capped to the most recent 60 days of generated sentiment.
type SentimentRequest struct {
	Stock            string  `json:"stock" validate:"required,max=32"`
	StartDate        string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	InvestmentAmount float64 `json:"investmentAmount" validate:"gt=0"`
}
