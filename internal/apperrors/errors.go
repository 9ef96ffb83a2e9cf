package apperrors

import "errors"

// Input errors represent malformed or out-of-range request data.
// These errors are surfaced to the client as 400 Bad Request.
var (
	// ErrInvalidInput is the umbrella error for request validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDateRange indicates that the start date is after the end date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidDateFormat indicates a date that is not formatted as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrZeroTotalWeight indicates a portfolio whose weights sum to zero and cannot be normalized.
	ErrZeroTotalWeight = errors.New("portfolio weights must sum to a positive value")

	// ErrUnknownRiskProfile indicates a risk profile outside Conservative, Moderate and Aggressive.
	ErrUnknownRiskProfile = errors.New("unknown risk profile")
)

// Data errors represent failures of the upstream market data source.
// These are recovered locally by falling back to simulated data and are never
// returned to the client.
var (
	// ErrDataUnavailable indicates that the live source returned no usable series.
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Operation errors represent failures while executing a use case.
// The message is returned to the client, the wrapped cause is only logged.
var (
	ErrFailedToPredict = errors.New("Failed to process LSTM prediction")

	ErrFailedToAnalyzeVaR = errors.New("Failed to process VaR analysis")

	ErrFailedToRecommendAIF = errors.New("Failed to process AIF recommendation")

	ErrFailedToAnalyzeSentiment = errors.New("Failed to process sentiment analysis")
)
