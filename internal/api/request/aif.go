package request

// AIFRequest represents the request body for an alternative investment fund recommendation.
type AIFRequest struct {
	RiskProfile       string  `json:"riskProfile" validate:"required,oneof=Conservative Moderate Aggressive"`
	InvestmentHorizon string  `json:"investmentHorizon" validate:"required,oneof=Short Medium Long"`
	Age               int     `json:"age" validate:"gte=18,lte=100"`
	IncomeStability   string  `json:"incomeStability,omitempty" validate:"omitempty,oneof=Low Medium High"`
	InvestmentAmount  float64 `json:"investmentAmount" validate:"gt=0"`
}
