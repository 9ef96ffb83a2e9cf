package risk

import "math"

// diversificationFactor dampens every scenario shock for a diversified portfolio.
const diversificationFactor = 0.8

// Scenario is a fixed market shock.
type Scenario struct {
	Name  string
	Shock float64
}

// Scenarios lists the stress scenarios in reporting order.
var Scenarios = []Scenario{
	{Name: "Market Crash (2008)", Shock: -0.35},
	{Name: "COVID-19 Crash (2020)", Shock: -0.25},
	{Name: "Interest Rate Hike", Shock: -0.08},
	{Name: "Natural Disaster", Shock: -0.05},
	{Name: "Global Political Crisis", Shock: -0.12},
	{Name: "India-Specific Crisis", Shock: -0.15},
}

// StressResult is the portfolio outcome under one scenario.
type StressResult struct {
	Scenario       string
	PortfolioValue float64
	LossAmount     float64
	LossPercentage float64
}

// StressTests applies every scenario, dampened by the diversification factor, to investment.
func StressTests(investment float64) []StressResult {
	out := make([]StressResult, len(Scenarios))
	for i, s := range Scenarios {
		shock := s.Shock * diversificationFactor
		value := investment * (1 + shock)
		out[i] = StressResult{
			Scenario:       s.Name,
			PortfolioValue: value,
			LossAmount:     investment - value,
			LossPercentage: math.Abs(shock * 100),
		}
	}
	return out
}
