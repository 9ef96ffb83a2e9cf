package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/forecast"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
	"github.com/ndewijer/FinLedge-Backend/internal/metrics"
	"github.com/ndewijer/FinLedge-Backend/internal/model"
)

// PredictionHistoryDays is the length of the history the forecaster reads.
const PredictionHistoryDays = 500

// PredictionService produces indicator driven price forecasts.
type PredictionService struct {
	provider marketdata.Provider
	seed     uint64
	now      func() time.Time
	log      zerolog.Logger
}

// NewPredictionService creates a PredictionService. A zero seed makes
// forecast noise random on every call.
func NewPredictionService(provider marketdata.Provider, seed uint64, log zerolog.Logger) *PredictionService {
	return &PredictionService{
		provider: provider,
		seed:     seed,
		now:      time.Now,
		log:      log.With().Str("component", "prediction").Logger(),
	}
}

// Predict forecasts req.Horizon days of prices for req.Stock and projects
// the return of investing req.InvestmentAmount at the first forecast price.
func (s *PredictionService) Predict(ctx context.Context, req request.PredictionRequest) (_ *model.PredictionResponse, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("prediction", start, err) }(time.Now())

	ticker := strings.ToUpper(strings.TrimSpace(req.Stock))
	history, err := s.provider.Fetch(ctx, ticker, PredictionHistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", ticker, err)
	}

	rng := marketdata.SeededRand(s.seed, "forecast:"+ticker)
	result, err := forecast.Forecast(history, req.Horizon, rng)
	if err != nil {
		return nil, fmt.Errorf("forecast %s: %w", ticker, err)
	}

	first := result.Predictions[0]
	last := result.Predictions[len(result.Predictions)-1]
	returnPct := (last - first) / first * 100
	profit := req.InvestmentAmount * returnPct / 100

	head := result.Predictions[:min(forecast.AccuracyWindow, len(result.Predictions))]
	tail := history.Prices[max(0, history.Len()-forecast.AccuracyWindow):]
	accuracy := forecast.ModelMetrics(head, tail)

	predictions := make([]string, len(result.Predictions))
	for i, p := range result.Predictions {
		predictions[i] = money(p)
	}

	s.log.Debug().
		Str("ticker", ticker).
		Str("source", string(history.Source)).
		Str("signal", result.Technical.Recommendation).
		Int("horizon", len(predictions)).
		Msg("forecast generated")

	snap := result.Technical
	return &model.PredictionResponse{
		Stock:            req.Stock,
		InvestmentAmount: req.InvestmentAmount,
		Summary: model.PredictionSummary{
			PredictionStart:  result.Dates[0],
			PredictionEnd:    result.Dates[len(result.Dates)-1],
			StartPrice:       money(first),
			EndPrice:         money(last),
			ReturnPercentage: percent(returnPct, 2),
			PotentialProfit:  money(profit),
			CurrentPrice:     money(history.CurrentPrice),
		},
		Details: model.PredictionDetails{
			Dates:       result.Dates,
			Predictions: predictions,
		},
		TechnicalAnalysis: model.TechnicalAnalysis{
			SMA20:          round(snap.SMA20, 2),
			SMA50:          round(snap.SMA50, 2),
			EMA12:          round(snap.EMA12, 2),
			RSI:            round(snap.RSI, 2),
			MACD:           round(snap.MACD, 4),
			TrendSignal:    snap.TrendSignal,
			MomentumSignal: snap.MomentumSignal,
			ReversionBias:  snap.ReversionBias,
			SignalStrength: round(snap.SignalStrength, 4),
			Signal:         snap.Recommendation,
		},
		Metrics: model.ModelMetrics{
			RMSE:    fixed(accuracy.RMSE, 2),
			MAPE:    fixed(accuracy.MAPE, 2),
			R2Score: fixed(accuracy.R2, 2),
		},
		ModelInfo: model.PredictionModelInfo{
			AnalysisID:  uuid.New().String(),
			Methodology: "LSTM-inspired prediction with technical indicators",
			Indicators:  "SMA, EMA, RSI, MACD",
			DataPoints:  history.Len(),
			Horizon:     len(predictions),
			DataSource:  string(history.Source),
			LastUpdated: today(s.now),
		},
	}, nil
}
