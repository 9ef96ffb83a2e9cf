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

// TestSentimentService_Analyze tests the Analyze method.
//
// WHY: Every daily series in the response must line up with the others,
// otherwise the chart on the client plots signals against the wrong prices.
func TestSentimentService_Analyze(t *testing.T) {
	ctx := context.Background()
	req := request.SentimentRequest{
		Stock:            "INFY.NS",
		StartDate:        "2024-03-01",
		EndDate:          "2024-04-15",
		InvestmentAmount: 100000,
	}

	t.Run("aligns all daily series", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("INFY.NS").Wave(90, 1500, 30).Build())
		resp, err := testutil.NewTestSentimentService(t, provider).Analyze(ctx, req)
		if err != nil {
			t.Fatalf("Analyze() returned unexpected error: %v", err)
		}

		sa := resp.SentimentAnalysis
		n := len(sa.Dates)
		if n != 45 {
			t.Fatalf("Expected 45 aligned days, got %d", n)
		}
		for name, l := range map[string]int{
			"prices":     len(sa.Prices),
			"scores":     len(sa.SentimentScores),
			"newsVolume": len(sa.NewsVolume),
		} {
			if l != n {
				t.Errorf("Expected %d %s, got %d", n, name, l)
			}
		}
		// Signals start on the second day
		if len(sa.Predictions) != n-1 || len(sa.TradingSignals) != n-1 {
			t.Errorf("Expected %d predictions and signals, got %d and %d", n-1, len(sa.Predictions), len(sa.TradingSignals))
		}
		if sa.Dates[0] != "2024-03-01" {
			t.Errorf("Expected sentiment to start 2024-03-01, got %s", sa.Dates[0])
		}
		if len(resp.InsightSummary.TopHeadlines) > 4 {
			t.Errorf("Expected at most 4 headlines, got %d", len(resp.InsightSummary.TopHeadlines))
		}
		if !strings.HasSuffix(resp.PerformanceMetrics.ModelAccuracy, "%") ||
			!strings.HasSuffix(resp.PerformanceMetrics.WinRate, "%") {
			t.Errorf("Expected percentages, got %+v", resp.PerformanceMetrics)
		}
		if resp.StockData.InvestmentAmount != "100000.00" {
			t.Errorf("Expected 100000.00, got %s", resp.StockData.InvestmentAmount)
		}
		if resp.ModelInfo.PriceSource != "live" {
			t.Errorf("Expected live price source, got %s", resp.ModelInfo.PriceSource)
		}
		if len(resp.InsightSummary.KeyInsights) == 0 || resp.InsightSummary.OverallSentiment == "" {
			t.Errorf("Expected insights, got %+v", resp.InsightSummary)
		}
	})

	t.Run("flat prices never outperform", func(t *testing.T) {
		provider := testutil.NewStaticProvider(testutil.NewSeries("INFY.NS").Flat(90, 1500).Build())
		resp, err := testutil.NewTestSentimentService(t, provider).Analyze(ctx, req)
		if err != nil {
			t.Fatalf("Analyze() returned unexpected error: %v", err)
		}
		pm := resp.PerformanceMetrics
		if pm.Outperformance != "0.00%" || pm.BuyAndHoldReturn != "0.00%" {
			t.Errorf("Expected zero returns, got %+v", pm)
		}
		if pm.SentimentCorrelation != "0.450" {
			t.Errorf("Expected default correlation 0.450, got %s", pm.SentimentCorrelation)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		bad := req
		bad.StartDate = "March 1"
		provider := testutil.NewStaticProvider(testutil.NewSeries("INFY.NS").Build())
		_, err := testutil.NewTestSentimentService(t, provider).Analyze(ctx, bad)
		if !errors.Is(err, apperrors.ErrInvalidDateFormat) {
			t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
		}
	})

	t.Run("rejects reversed period", func(t *testing.T) {
		bad := req
		bad.StartDate, bad.EndDate = req.EndDate, req.StartDate
		provider := testutil.NewStaticProvider(testutil.NewSeries("INFY.NS").Build())
		_, err := testutil.NewTestSentimentService(t, provider).Analyze(ctx, bad)
		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}
