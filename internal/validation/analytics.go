package validation

import (
	"context"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
)

// ValidatePrediction validates a forecast request.
//
// Required fields:
//   - stock: non-empty ticker
//   - investmentAmount: must be positive
//
// Optional fields (validated if provided):
//   - startDate, endDate: YYYY-MM-DD, start not after end when both are set
//   - horizon: 1 to 365 days
func ValidatePrediction(ctx context.Context, req request.PredictionRequest) error {
	if err := Struct(ctx, req); err != nil {
		return err
	}
	if req.StartDate != "" && req.EndDate != "" {
		return validatePeriod(req.StartDate, req.EndDate)
	}
	return nil
}

// ValidateVaR validates a Value-at-Risk request. Besides the tag rules
// (1 to 25 unique tickers, non-negative weights, confidence strictly between
// 0 and 1) the weights must sum to a positive value.
func ValidateVaR(ctx context.Context, req request.VaRRequest) error {
	if err := Struct(ctx, req); err != nil {
		return err
	}

	var total float64
	for _, s := range req.Stocks {
		total += s.Weight
	}
	if total <= 0 {
		return fieldError("stocks", "weights must sum to a positive value")
	}
	return nil
}

// ValidateAIF validates a fund recommendation request.
func ValidateAIF(ctx context.Context, req request.AIFRequest) error {
	return Struct(ctx, req)
}

// ValidateSentiment validates a sentiment backtest request.
func ValidateSentiment(ctx context.Context, req request.SentimentRequest) error {
	if err := Struct(ctx, req); err != nil {
		return err
	}
	return validatePeriod(req.StartDate, req.EndDate)
}
