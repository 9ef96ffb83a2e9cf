package model

import "github.com/ndewijer/FinLedge-Backend/internal/aif"

// AIFResponse is the result of an alternative investment fund recommendation.
type AIFResponse struct {
	Success                   bool                 `json:"success"`
	InvestmentProfile         InvestmentProfile    `json:"investmentProfile"`
	AssetAllocation           aif.Allocation       `json:"assetAllocation"`
	AIFRecommendations        []AIFAllocation      `json:"aifRecommendations"`
	AdditionalRecommendations []string             `json:"additionalRecommendations"`
	MarketInsights            []string             `json:"marketInsights"`
	MarketConditions          aif.MarketConditions `json:"marketConditions"`
	Notes                     []string             `json:"notes"`
}

// InvestmentProfile echoes the investor described in the request.
type InvestmentProfile struct {
	RiskProfile       string  `json:"riskProfile"`
	InvestmentAmount  float64 `json:"investmentAmount"`
	InvestmentHorizon string  `json:"investmentHorizon"`
	Age               int     `json:"age"`
	IncomeStability   string  `json:"incomeStability,omitempty"`
}

// AIFAllocation is one selected fund with its share of the Alternative sleeve.
type AIFAllocation struct {
	AIF                  aif.Fund `json:"aif"`
	AllocationPercentage float64  `json:"allocationPercentage"`
	AllocationAmount     float64  `json:"allocationAmount"`
}
