package risk

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
)

// HistoryDays is the length of the price history fetched per instrument.
const HistoryDays = 252

// Holding is a requested portfolio position with a raw weight.
type Holding struct {
	Ticker string
	Weight float64
}

// Position is a holding after normalization and data retrieval.
type Position struct {
	Ticker           string
	Weight           float64 // normalized, sums to 1 across positions
	RiskContribution float64 // percent
	Source           marketdata.Source
}

// Report is the complete risk analysis of a portfolio. VaR amounts are in
// the currency of the investment.
type Report struct {
	Positions      []Position
	Confidence     float64
	Investment     float64
	DataPoints     int
	HistoricalVaR  float64
	ParametricVaR  float64
	MonteCarloVaR  float64
	ConditionalVaR float64
	Metrics        Metrics
	StressTests    []StressResult
}

// VaRPercent is the historical VaR as a percentage of the investment.
func (r Report) VaRPercent() float64 {
	if r.Investment == 0 {
		return 0
	}
	return r.HistoricalVaR / r.Investment * 100
}

// Engine fetches histories and runs the risk calculations.
type Engine struct {
	provider    marketdata.Provider
	simulations int
	seed        uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSimulations sets the Monte Carlo sample size.
func WithSimulations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.simulations = n
		}
	}
}

// WithSeed makes Monte Carlo draws reproducible. Zero keeps them random.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// NewEngine creates an Engine reading prices from provider.
func NewEngine(provider marketdata.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider:    provider,
		simulations: DefaultSimulations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze normalizes the holdings, fetches every history concurrently and
// computes VaR, portfolio metrics, risk contributions and stress tests.
func (e *Engine) Analyze(ctx context.Context, holdings []Holding, confidence, investment float64) (Report, error) {
	if len(holdings) == 0 {
		return Report{}, fmt.Errorf("%w: empty portfolio", apperrors.ErrInvalidInput)
	}
	if confidence <= 0 || confidence >= 1 {
		return Report{}, fmt.Errorf("%w: confidence level must be between 0 and 1", apperrors.ErrInvalidInput)
	}

	raw := make([]float64, len(holdings))
	for i, h := range holdings {
		raw[i] = h.Weight
	}
	weights, err := NormalizeWeights(raw)
	if err != nil {
		return Report{}, err
	}

	series := make([]marketdata.Series, len(holdings))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range holdings {
		g.Go(func() error {
			s, err := e.provider.Fetch(gctx, h.Ticker, HistoryDays)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", h.Ticker, err)
			}
			series[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	returns := make([][]float64, len(series))
	positions := make([]Position, len(series))
	tickers := make([]string, len(series))
	for i, s := range series {
		returns[i] = s.Returns()
		tickers[i] = s.Ticker
		positions[i] = Position{
			Ticker:           holdings[i].Ticker,
			Weight:           weights[i],
			RiskContribution: RiskContribution(returns[i], weights[i]),
			Source:           s.Source,
		}
	}

	portfolio := PortfolioReturns(returns, weights)
	if len(portfolio) == 0 {
		return Report{}, fmt.Errorf("%w: could not calculate portfolio returns", apperrors.ErrDataUnavailable)
	}

	rng := marketdata.SeededRand(e.seed, "montecarlo:"+strings.Join(tickers, ","))

	return Report{
		Positions:      positions,
		Confidence:     confidence,
		Investment:     investment,
		DataPoints:     len(portfolio),
		HistoricalVaR:  HistoricalVaR(portfolio, confidence) * investment,
		ParametricVaR:  ParametricVaR(portfolio, confidence) * investment,
		MonteCarloVaR:  MonteCarloVaR(portfolio, confidence, e.simulations, rng) * investment,
		ConditionalVaR: ConditionalVaR(portfolio, confidence) * investment,
		Metrics:        PortfolioMetrics(portfolio),
		StressTests:    StressTests(investment),
	}, nil
}
