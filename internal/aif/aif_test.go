package aif

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog("")
	require.NoError(t, err)
	return c
}

func TestLoadCatalog(t *testing.T) {
	t.Run("embedded catalog", func(t *testing.T) {
		c := defaultCatalog(t)
		assert.Len(t, c.Funds, 15)
		assert.Equal(t, "Avendus Absolute Return Fund", c.Funds[0].Name)
		assert.Equal(t, "Equity: Long-Short", c.Funds[0].Category)
		assert.Equal(t, 7.05, c.MarketConditions.GSecYield)
		assert.Len(t, c.Guidance[Moderate], 4)
		assert.Len(t, c.Notes, 4)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := []byte("funds:\n  - name: Solo\n    riskScore: 4\n    sharpeRatio: 1.0\n    lockInPeriod: 12\n")
		require.NoError(t, os.WriteFile(path, content, 0o600))

		c, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Len(t, c.Funds, 1)
		assert.Equal(t, "Solo", c.Funds[0].Name)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		_, err := ParseCatalog([]byte("funds: []\n"))
		assert.Error(t, err)

		_, err = ParseCatalog([]byte("funds:\n  - name: Bad\n    riskScore: 11\n"))
		assert.Error(t, err)
	})
}

func TestAssetAllocation(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		age     int
		want    Allocation
	}{
		{"conservative young is not adjusted", Conservative, 25, Allocation{20, 60, 10, 5, 5}},
		{"conservative senior shifts to debt", Conservative, 60, Allocation{15, 65, 10, 5, 5}},
		{"moderate young shifts to equity", Moderate, 25, Allocation{45, 35, 10, 5, 5}},
		{"moderate middle aged baseline", Moderate, 40, Allocation{40, 40, 10, 5, 5}},
		{"moderate senior shifts to debt", Moderate, 55, Allocation{35, 45, 10, 5, 5}},
		{"aggressive young shifts to equity", Aggressive, 22, Allocation{70, 15, 5, 5, 5}},
		{"aggressive senior is not adjusted", Aggressive, 70, Allocation{65, 20, 5, 5, 5}},
		{"age 30 boundary", Moderate, 30, Allocation{40, 40, 10, 5, 5}},
		{"age 50 boundary", Moderate, 50, Allocation{40, 40, 10, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssetAllocation(tt.profile, tt.age)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 100.0, got.Total())
		})
	}

	t.Run("unknown profile", func(t *testing.T) {
		_, err := AssetAllocation("Reckless", 40)
		assert.True(t, errors.Is(err, apperrors.ErrUnknownRiskProfile))
	})
}

func TestRank(t *testing.T) {
	c := defaultCatalog(t)

	t.Run("bands are respected", func(t *testing.T) {
		for _, profile := range []string{Conservative, Moderate, Aggressive} {
			for _, f := range c.Rank(profile, HorizonLong) {
				switch profile {
				case Conservative:
					assert.LessOrEqual(t, f.RiskScore, 4)
				case Moderate:
					assert.GreaterOrEqual(t, f.RiskScore, 3)
					assert.LessOrEqual(t, f.RiskScore, 6)
				case Aggressive:
					assert.GreaterOrEqual(t, f.RiskScore, 5)
				}
			}
		}
	})

	t.Run("short horizon drops long lock-ins", func(t *testing.T) {
		for _, f := range c.Rank(Moderate, HorizonShort) {
			assert.LessOrEqual(t, f.LockInPeriod, 18)
		}
		assert.Len(t, c.Rank(Conservative, HorizonLong), 3)
		assert.Len(t, c.Rank(Conservative, HorizonShort), 1)
	})

	t.Run("sorted by sharpe descending", func(t *testing.T) {
		ranked := c.Rank(Moderate, HorizonLong)
		require.NotEmpty(t, ranked)
		for i := 1; i < len(ranked); i++ {
			assert.GreaterOrEqual(t, ranked[i-1].SharpeRatio, ranked[i].SharpeRatio)
		}
		assert.Equal(t, "UTI Structured Debt Opportunities Fund", ranked[0].Name)
	})

	t.Run("unknown profile matches nothing", func(t *testing.T) {
		assert.Empty(t, c.Rank("Reckless", HorizonLong))
	})
}

func TestRecommend(t *testing.T) {
	c := defaultCatalog(t)

	t.Run("conservative short horizon", func(t *testing.T) {
		rec, err := c.Recommend(Profile{
			RiskProfile:       Conservative,
			InvestmentHorizon: HorizonShort,
			Age:               25,
			InvestmentAmount:  500000,
		})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, rec.Allocation.Debt, 60.0)
		require.Len(t, rec.Funds, 1)
		assert.Equal(t, "SBI Long Short Equity Fund", rec.Funds[0].Fund.Name)
		assert.Equal(t, 100.0, rec.Funds[0].AllocationPercentage)
		assert.InDelta(t, 25000.0, rec.Funds[0].AllocationAmount, 1e-9)
	})

	t.Run("three funds split 50/30/20", func(t *testing.T) {
		rec, err := c.Recommend(Profile{
			RiskProfile:       Aggressive,
			InvestmentHorizon: HorizonLong,
			Age:               40,
			InvestmentAmount:  1000000,
		})
		require.NoError(t, err)
		require.Len(t, rec.Funds, 3)

		var pct, amount float64
		for _, f := range rec.Funds {
			pct += f.AllocationPercentage
			amount += f.AllocationAmount
		}
		assert.Equal(t, 100.0, pct)
		assert.InDelta(t, 50000.0, amount, 1e-6)
		assert.Equal(t, []float64{50, 30, 20}, []float64{
			rec.Funds[0].AllocationPercentage,
			rec.Funds[1].AllocationPercentage,
			rec.Funds[2].AllocationPercentage,
		})
		assert.Equal(t, "Marcellus Investment Managers - Consistent Compounders", rec.Funds[0].Fund.Name)
	})

	t.Run("two funds split 60/40", func(t *testing.T) {
		small := &Catalog{Funds: []Fund{
			{Name: "A", RiskScore: 5, SharpeRatio: 1.0, LockInPeriod: 12},
			{Name: "B", RiskScore: 5, SharpeRatio: 1.2, LockInPeriod: 12},
		}}
		rec, err := small.Recommend(Profile{RiskProfile: Moderate, InvestmentHorizon: HorizonLong, Age: 40, InvestmentAmount: 100000})
		require.NoError(t, err)
		require.Len(t, rec.Funds, 2)
		assert.Equal(t, "B", rec.Funds[0].Fund.Name)
		assert.Equal(t, 60.0, rec.Funds[0].AllocationPercentage)
		assert.InDelta(t, 3000.0, rec.Funds[0].AllocationAmount, 1e-9)
		assert.Equal(t, 40.0, rec.Funds[1].AllocationPercentage)
	})

	t.Run("no eligible funds", func(t *testing.T) {
		small := &Catalog{Funds: []Fund{{Name: "A", RiskScore: 9, SharpeRatio: 1}}}
		rec, err := small.Recommend(Profile{RiskProfile: Conservative, InvestmentHorizon: HorizonLong, Age: 40, InvestmentAmount: 100000})
		require.NoError(t, err)
		assert.Empty(t, rec.Funds)
	})

	t.Run("advisory text", func(t *testing.T) {
		rec, err := c.Recommend(Profile{RiskProfile: Moderate, InvestmentHorizon: HorizonMedium, Age: 35, InvestmentAmount: 100000})
		require.NoError(t, err)
		assert.Equal(t, c.Guidance[Moderate], rec.Guidance)
		require.Len(t, rec.MarketInsights, 4)
		assert.Equal(t, "With inflation at 5.1%, alternative investments can provide inflation-beating returns", rec.MarketInsights[0])
		assert.Contains(t, rec.MarketInsights[1], "7.05%")
	})
}
