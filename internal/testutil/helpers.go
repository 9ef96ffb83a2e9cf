package testutil

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/aif"
	"github.com/ndewijer/FinLedge-Backend/internal/cache"
	"github.com/ndewijer/FinLedge-Backend/internal/config"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
)

// TestSeed makes every random draw in the services reproducible.
const TestSeed = 42

// TestSimulations keeps Monte Carlo runs fast in tests.
const TestSimulations = 2000

// LoadTickerTable returns the embedded ticker table.
func LoadTickerTable(t *testing.T) *config.TickerTable {
	t.Helper()

	table, err := config.LoadTickerTable("")
	if err != nil {
		t.Fatalf("load ticker table: %v", err)
	}
	return table
}

// NewTestSimulator creates a seeded simulator over the embedded ticker table.
func NewTestSimulator(t *testing.T) *marketdata.Simulator {
	t.Helper()
	return marketdata.NewSimulator(LoadTickerTable(t), TestSeed)
}

func NewTestPredictionService(t *testing.T, provider marketdata.Provider) *service.PredictionService {
	t.Helper()
	return service.NewPredictionService(provider, TestSeed, zerolog.Nop())
}

func NewTestRiskService(t *testing.T, provider marketdata.Provider) *service.RiskService {
	t.Helper()
	return service.NewRiskService(provider, TestSimulations, TestSeed, zerolog.Nop())
}

func NewTestAIFService(t *testing.T) *service.AIFService {
	t.Helper()

	catalog, err := aif.LoadCatalog("")
	if err != nil {
		t.Fatalf("load aif catalog: %v", err)
	}
	return service.NewAIFService(catalog, zerolog.Nop())
}

func NewTestSentimentService(t *testing.T, provider marketdata.Provider) *service.SentimentService {
	t.Helper()
	return service.NewSentimentService(provider, LoadTickerTable(t), TestSeed, zerolog.Nop())
}

// NewTestSystemService creates a SystemService over an in-memory cache that
// is closed when the test ends.
func NewTestSystemService(t *testing.T) *service.SystemService {
	t.Helper()

	mc := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mc.Close() })
	return service.NewSystemService(mc, "memory", false)
}
