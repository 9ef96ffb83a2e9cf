package handlers

import (
	"net/http"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
	"github.com/ndewijer/FinLedge-Backend/internal/validation"
)

// SentimentHandler handles HTTP requests for sentiment backtests.
type SentimentHandler struct {
	sentimentService *service.SentimentService
}

// NewSentimentHandler creates a new SentimentHandler with the provided service dependency.
func NewSentimentHandler(sentimentService *service.SentimentService) *SentimentHandler {
	return &SentimentHandler{
		sentimentService: sentimentService,
	}
}

// Analyze handles POST requests for a sentiment driven strategy backtest.
//
// Endpoint: POST /api/sentiment-analysis
// Request Body: SentimentRequest (stock, startDate, endDate, investmentAmount)
// Response: 200 OK with SentimentResponse
// Error: 400 Bad Request if validation fails, dates are malformed or reversed
// Error: 500 Internal Server Error if the analysis fails
func (h *SentimentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SentimentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSentiment(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	analysis, err := h.sentimentService.Analyze(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, apperrors.ErrFailedToAnalyzeSentiment, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}
