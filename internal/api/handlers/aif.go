package handlers

import (
	"net/http"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
	"github.com/ndewijer/FinLedge-Backend/internal/validation"
)

// AIFHandler handles HTTP requests for alternative investment fund recommendations.
type AIFHandler struct {
	aifService *service.AIFService
}

// NewAIFHandler creates a new AIFHandler with the provided service dependency.
func NewAIFHandler(aifService *service.AIFService) *AIFHandler {
	return &AIFHandler{
		aifService: aifService,
	}
}

// Recommend handles POST requests for a fund recommendation.
//
// Endpoint: POST /api/aif-recommendation
// Request Body: AIFRequest (riskProfile, investmentHorizon, age, investmentAmount and optionally incomeStability)
// Response: 200 OK with AIFResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the recommendation fails
func (h *AIFHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AIFRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAIF(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	recommendation, err := h.aifService.Recommend(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, apperrors.ErrFailedToRecommendAIF, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, recommendation)
}
