package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
	"github.com/ndewijer/FinLedge-Backend/internal/metrics"
	"github.com/ndewijer/FinLedge-Backend/internal/model"
	"github.com/ndewijer/FinLedge-Backend/internal/risk"
)

// RiskService runs portfolio Value-at-Risk analyses.
type RiskService struct {
	engine      *risk.Engine
	simulations int
	now         func() time.Time
	log         zerolog.Logger
}

// NewRiskService creates a RiskService drawing simulations Monte Carlo
// samples per request. A zero seed keeps the samples random.
func NewRiskService(provider marketdata.Provider, simulations int, seed uint64, log zerolog.Logger) *RiskService {
	if simulations <= 0 {
		simulations = risk.DefaultSimulations
	}
	return &RiskService{
		engine:      risk.NewEngine(provider, risk.WithSimulations(simulations), risk.WithSeed(seed)),
		simulations: simulations,
		now:         time.Now,
		log:         log.With().Str("component", "risk").Logger(),
	}
}

// Analyze normalizes the requested weights and reports VaR, portfolio
// metrics, per-ticker risk contributions and stress scenarios.
func (s *RiskService) Analyze(ctx context.Context, req request.VaRRequest) (_ *model.VaRResponse, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("var", start, err) }(time.Now())

	holdings := make([]risk.Holding, len(req.Stocks))
	for i, st := range req.Stocks {
		holdings[i] = risk.Holding{
			Ticker: strings.ToUpper(strings.TrimSpace(st.Ticker)),
			Weight: st.Weight,
		}
	}

	report, err := s.engine.Analyze(ctx, holdings, req.ConfidenceLevel, req.InvestmentAmount)
	if err != nil {
		return nil, fmt.Errorf("analyze portfolio: %w", err)
	}

	tickers := make([]string, len(report.Positions))
	weights := make(map[string]string, len(report.Positions))
	sources := make(map[string]string, len(report.Positions))
	contribution := make(map[string]string, len(report.Positions))
	for i, p := range report.Positions {
		tickers[i] = p.Ticker
		weights[p.Ticker] = fraction(p.Weight, 2)
		sources[p.Ticker] = string(p.Source)
		contribution[p.Ticker] = percent(p.RiskContribution, 2)
	}

	stress := make(map[string]model.StressTest, len(report.StressTests))
	for _, st := range report.StressTests {
		stress[st.Scenario] = model.StressTest{
			PortfolioValue: money(st.PortfolioValue),
			LossAmount:     money(st.LossAmount),
			LossPercentage: fixed(st.LossPercentage, 2),
		}
	}

	s.log.Debug().
		Strs("tickers", tickers).
		Int("dataPoints", report.DataPoints).
		Float64("historicalVaR", report.HistoricalVaR).
		Msg("portfolio analyzed")

	return &model.VaRResponse{
		PortfolioDetails: model.PortfolioDetails{
			Tickers:         tickers,
			Weights:         weights,
			InvestmentValue: money(report.Investment),
			ConfidenceLevel: fraction(report.Confidence, 1),
			DataPoints:      report.DataPoints,
			DataSources:     sources,
		},
		VaRMetrics: model.VaRMetrics{
			HistoricalVaR:   money(report.HistoricalVaR),
			ParametricVaR:   money(report.ParametricVaR),
			MonteCarloVaR:   money(report.MonteCarloVaR),
			ConditionalVaR:  money(report.ConditionalVaR),
			VaRAsPercentage: percent(report.VaRPercent(), 2),
		},
		PortfolioMetrics: model.PortfolioMetrics{
			AnnualReturn:     fraction(report.Metrics.AnnualReturn, 2),
			AnnualVolatility: fraction(report.Metrics.AnnualVolatility, 2),
			SharpeRatio:      fixed(report.Metrics.SharpeRatio, 2),
			MaxDrawdown:      fraction(report.Metrics.MaxDrawdown, 2),
		},
		RiskContribution:  contribution,
		StressTestResults: stress,
		CalculationInfo: model.CalculationInfo{
			AnalysisID:      uuid.New().String(),
			Methodology:     "Historical, parametric and Monte Carlo VaR over daily returns",
			DataSource:      "Yahoo Finance chart data with simulated fallback",
			Simulations:     s.simulations,
			CalculationDate: today(s.now),
		},
	}, nil
}
