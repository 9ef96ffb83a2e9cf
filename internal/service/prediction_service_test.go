package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/testutil"
)

// TestPredictionService_Predict tests the Predict method.
//
// WHY: The forecast response is assembled from several engines (provider,
// indicators, forecaster, accuracy metrics). This checks the wiring, the
// formatting rules and that seeded runs replay identically.
func TestPredictionService_Predict(t *testing.T) {
	ctx := context.Background()
	req := request.PredictionRequest{
		Stock:            "tcs.ns",
		InvestmentAmount: 100000,
		Horizon:          30,
	}

	t.Run("forecasts from the last history date", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("TCS.NS").Rising(120, 100, 1).Build())
		svc := testutil.NewTestPredictionService(t, provider)

		resp, err := svc.Predict(ctx, req)
		if err != nil {
			t.Fatalf("Predict() returned unexpected error: %v", err)
		}

		if len(resp.Details.Dates) != 30 || len(resp.Details.Predictions) != 30 {
			t.Fatalf("Expected 30 forecast points, got %d dates and %d predictions",
				len(resp.Details.Dates), len(resp.Details.Predictions))
		}
		for i, p := range resp.Details.Predictions {
			dot := strings.IndexByte(p, '.')
			if dot < 0 || len(p)-dot-1 != 2 {
				t.Fatalf("Expected 2-decimal prediction string at %d, got %q", i, p)
			}
		}
		if resp.Details.Predictions[0] != resp.Summary.StartPrice {
			t.Errorf("Expected first prediction %s to match start price %s", resp.Details.Predictions[0], resp.Summary.StartPrice)
		}
		if resp.Summary.PredictionStart != "2025-05-01" {
			t.Errorf("Expected forecast to start 2025-05-01, got %s", resp.Summary.PredictionStart)
		}
		if resp.Summary.PredictionEnd != "2025-05-30" {
			t.Errorf("Expected forecast to end 2025-05-30, got %s", resp.Summary.PredictionEnd)
		}
		if resp.Summary.CurrentPrice != "219.00" {
			t.Errorf("Expected current price 219.00, got %s", resp.Summary.CurrentPrice)
		}
		if !strings.HasSuffix(resp.Summary.ReturnPercentage, "%") {
			t.Errorf("Expected percentage suffix, got %s", resp.Summary.ReturnPercentage)
		}
		if resp.Stock != "tcs.ns" || resp.InvestmentAmount != 100000 {
			t.Errorf("Expected request echoed, got %s %v", resp.Stock, resp.InvestmentAmount)
		}
		if resp.TechnicalAnalysis.Signal != "Strong Buy" {
			t.Errorf("Expected Strong Buy for a steady uptrend, got %s", resp.TechnicalAnalysis.Signal)
		}
		if resp.ModelInfo.DataPoints != 120 || resp.ModelInfo.Horizon != 30 {
			t.Errorf("Expected 120 data points and horizon 30, got %d and %d",
				resp.ModelInfo.DataPoints, resp.ModelInfo.Horizon)
		}
		if resp.ModelInfo.AnalysisID == "" {
			t.Error("Expected analysis id")
		}
		if calls := provider.Calls(); len(calls) != 1 || calls[0] != "TCS.NS" {
			t.Errorf("Expected one fetch for TCS.NS, got %v", calls)
		}
	})

	t.Run("seeded runs are reproducible", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("TCS.NS").Wave(120, 3800, 40).Build())
		first, err := testutil.NewTestPredictionService(t, provider).Predict(ctx, req)
		if err != nil {
			t.Fatalf("Predict() returned unexpected error: %v", err)
		}
		second, err := testutil.NewTestPredictionService(t, provider).Predict(ctx, req)
		if err != nil {
			t.Fatalf("Predict() returned unexpected error: %v", err)
		}

		for i := range first.Details.Predictions {
			if first.Details.Predictions[i] != second.Details.Predictions[i] {
				t.Fatalf("Prediction %d differs: %v vs %v", i, first.Details.Predictions[i], second.Details.Predictions[i])
			}
		}
	})

	t.Run("short history uses default model metrics", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("TCS.NS").Flat(5, 100).Build())
		resp, err := testutil.NewTestPredictionService(t, provider).Predict(ctx, req)
		if err != nil {
			t.Fatalf("Predict() returned unexpected error: %v", err)
		}
		if resp.TechnicalAnalysis.Signal != "Hold" {
			t.Errorf("Expected Hold without indicators, got %s", resp.TechnicalAnalysis.Signal)
		}
		if resp.Summary.StartPrice != "100.00" || resp.Summary.EndPrice != "100.00" {
			t.Errorf("Expected flat forecast at 100.00, got %s to %s", resp.Summary.StartPrice, resp.Summary.EndPrice)
		}
	})

	t.Run("returns error when history is unusable", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("TCS.NS").WithPrices(100).Build())
		_, err := testutil.NewTestPredictionService(t, provider).Predict(ctx, req)
		if !errors.Is(err, apperrors.ErrDataUnavailable) {
			t.Errorf("Expected ErrDataUnavailable, got %v", err)
		}
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		boom := errors.New("boom")
		provider := testutil.NewStaticProvider().WithError(boom)
		_, err := testutil.NewTestPredictionService(t, provider).Predict(ctx, req)
		if !errors.Is(err, boom) {
			t.Errorf("Expected wrapped provider error, got %v", err)
		}
	})
}
