package aif

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
)

// Risk profiles.
const (
	Conservative = "Conservative"
	Moderate     = "Moderate"
	Aggressive   = "Aggressive"
)

// Investment horizons.
const (
	HorizonShort  = "Short"
	HorizonMedium = "Medium"
	HorizonLong   = "Long"
)

const (
	maxSelected       = 3
	shortHorizonLock  = 18 // months
	ageShiftPoints    = 5
	youngInvestorAge  = 30
	seniorInvestorAge = 50
)

// Allocation is a percentage split across asset classes summing to 100.
type Allocation struct {
	Equity      float64 `json:"Equity"`
	Debt        float64 `json:"Debt"`
	Gold        float64 `json:"Gold"`
	RealEstate  float64 `json:"RealEstate"`
	Alternative float64 `json:"Alternative"`
}

// Total is the sum of all sleeves.
func (a Allocation) Total() float64 {
	return a.Equity + a.Debt + a.Gold + a.RealEstate + a.Alternative
}

var baselines = map[string]Allocation{
	Conservative: {Equity: 20, Debt: 60, Gold: 10, RealEstate: 5, Alternative: 5},
	Moderate:     {Equity: 40, Debt: 40, Gold: 10, RealEstate: 5, Alternative: 5},
	Aggressive:   {Equity: 65, Debt: 20, Gold: 5, RealEstate: 5, Alternative: 5},
}

// splits gives the share of the Alternative sleeve per selected fund, by count.
var splits = map[int][]float64{
	1: {100},
	2: {60, 40},
	3: {50, 30, 20},
}

// Profile describes the investor.
type Profile struct {
	RiskProfile       string
	InvestmentHorizon string
	Age               int
	IncomeStability   string
	InvestmentAmount  float64
}

// FundAllocation is a selected fund and its share of the Alternative sleeve.
type FundAllocation struct {
	Fund                 Fund
	AllocationPercentage float64
	AllocationAmount     float64
}

// Recommendation is the full output of Recommend.
type Recommendation struct {
	Allocation       Allocation
	Funds            []FundAllocation
	Guidance         []string
	MarketInsights   []string
	MarketConditions MarketConditions
	Notes            []string
}

// AssetAllocation returns the baseline split for riskProfile adjusted for age:
// under 30 moves five points from Debt to Equity unless Conservative, over 50
// moves five points from Equity to Debt unless Aggressive.
func AssetAllocation(riskProfile string, age int) (Allocation, error) {
	a, ok := baselines[riskProfile]
	if !ok {
		return Allocation{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownRiskProfile, riskProfile)
	}

	switch {
	case age < youngInvestorAge && riskProfile != Conservative:
		a.Equity += ageShiftPoints
		a.Debt -= ageShiftPoints
	case age > seniorInvestorAge && riskProfile != Aggressive:
		a.Equity -= ageShiftPoints
		a.Debt += ageShiftPoints
	}
	return a, nil
}

// Eligible reports whether fund suits the risk profile and horizon.
func Eligible(f Fund, riskProfile, horizon string) bool {
	switch riskProfile {
	case Conservative:
		if f.RiskScore > 4 {
			return false
		}
	case Moderate:
		if f.RiskScore < 3 || f.RiskScore > 6 {
			return false
		}
	case Aggressive:
		if f.RiskScore < 5 {
			return false
		}
	default:
		return false
	}
	return horizon != HorizonShort || f.LockInPeriod <= shortHorizonLock
}

// Rank filters the catalog for the profile and orders the result by Sharpe
// ratio, highest first. Ties keep catalog order.
func (c *Catalog) Rank(riskProfile, horizon string) []Fund {
	var out []Fund
	for _, f := range c.Funds {
		if Eligible(f, riskProfile, horizon) {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b Fund) int {
		switch {
		case a.SharpeRatio > b.SharpeRatio:
			return -1
		case a.SharpeRatio < b.SharpeRatio:
			return 1
		}
		return 0
	})
	return out
}

// Recommend selects up to three funds and splits the Alternative sleeve of
// the investor's asset allocation across them.
func (c *Catalog) Recommend(p Profile) (Recommendation, error) {
	allocation, err := AssetAllocation(p.RiskProfile, p.Age)
	if err != nil {
		return Recommendation{}, err
	}

	ranked := c.Rank(p.RiskProfile, p.InvestmentHorizon)
	selected := ranked[:min(len(ranked), maxSelected)]

	sleeve := allocation.Alternative / 100 * p.InvestmentAmount
	funds := make([]FundAllocation, len(selected))
	for i, f := range selected {
		share := splits[len(selected)][i]
		funds[i] = FundAllocation{
			Fund:                 f,
			AllocationPercentage: share,
			AllocationAmount:     sleeve * share / 100,
		}
	}

	return Recommendation{
		Allocation:       allocation,
		Funds:            funds,
		Guidance:         slices.Clone(c.Guidance[p.RiskProfile]),
		MarketInsights:   c.MarketInsights(),
		MarketConditions: c.MarketConditions,
		Notes:            slices.Clone(c.Notes),
	}, nil
}

// MarketInsights renders the commentary for the current market conditions.
func (c *Catalog) MarketInsights() []string {
	mc := c.MarketConditions
	return []string{
		fmt.Sprintf("With inflation at %s%%, alternative investments can provide inflation-beating returns", formatFigure(mc.Inflation)),
		fmt.Sprintf("Current G-Sec yield of %s%% makes certain AIFs attractive compared to traditional fixed income", formatFigure(mc.GSecYield)),
		"Market-neutral strategies can help navigate volatility in the equity markets",
		"AIFs can provide portfolio diversification beyond traditional asset classes",
	}
}

func formatFigure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
