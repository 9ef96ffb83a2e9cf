package request

// StockWeight is a single portfolio position. Weights are relative and are
// normalized to sum to 1 by the risk engine.
type StockWeight struct {
	Ticker string  `json:"ticker" validate:"required,max=32"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// VaRRequest represents the request body for a Value-at-Risk analysis.
type VaRRequest struct {
	Stocks           []StockWeight `json:"stocks" validate:"required,min=1,max=25,unique=Ticker,dive"`
	ConfidenceLevel  float64       `json:"confidenceLevel" validate:"gt=0,lt=1"`
	InvestmentAmount float64       `json:"investmentAmount" validate:"gt=0"`
}
