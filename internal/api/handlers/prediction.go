package handlers

import (
	"net/http"

	"github.com/ndewijer/FinLedge-Backend/internal/api/request"
	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
	"github.com/ndewijer/FinLedge-Backend/internal/validation"
)

// PredictionHandler handles HTTP requests for price forecasts.
type PredictionHandler struct {
	predictionService *service.PredictionService
}

// NewPredictionHandler creates a new PredictionHandler with the provided service dependency.
func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// Predict handles POST requests for an indicator driven price forecast.
//
// Endpoint: POST /api/lstm-prediction
// Request Body: PredictionRequest (stock, investmentAmount and optionally startDate, endDate, horizon)
// Response: 200 OK with PredictionResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the forecast fails
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.PredictionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidatePrediction(r.Context(), req); err != nil {
		respondValidationError(w, err)
		return
	}

	prediction, err := h.predictionService.Predict(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, apperrors.ErrFailedToPredict, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, prediction)
}
