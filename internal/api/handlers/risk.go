package handlers

import (
	"net/http"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
	"github.com/ndewijer/FinLedge-Backend/internal/validation"
)

// RiskHandler handles HTTP requests for portfolio risk analysis.
type RiskHandler struct {
	riskService *service.RiskService
}

// NewRiskHandler creates a new RiskHandler with the provided service dependency.
func NewRiskHandler(riskService *service.RiskService) *RiskHandler {
	return &RiskHandler{
		riskService: riskService,
	}
}

// AnalyzeVaR handles POST requests for a Value-at-Risk analysis.
// Weights are relative and normalized before use.
//
// Endpoint: POST /api/var-analysis
// Request Body: VaRRequest (stocks [{ticker, weight}], confidenceLevel, investmentAmount)
// Response: 200 OK with VaRResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the analysis fails
func (h *RiskHandler) AnalyzeVaR(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.VaRRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateVaR(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	analysis, err := h.riskService.Analyze(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, apperrors.ErrFailedToAnalyzeVaR, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}
