package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/apperrors"
	"github.com/ndewijer/FinLedge-Backend/internal/validation"
)

// maxBodyBytes bounds the size of a decoded request body.
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// parseJSON decodes the request body into T and fills unset fields from
// their `default` struct tags.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if r.Body == nil {
		return req, errEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errEmptyBody
		}
		return req, err
	}

	if err := defaults.Set(&req); err != nil {
		return req, fmt.Errorf("apply defaults: %w", err)
	}
	return req, nil
}

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error().Err(err).Msg("Failed to encode JSON")
		}
	}
}

// respondValidationError writes a 400 whose details are the field messages
// of a validation.Error, or the error text otherwise.
func respondValidationError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}

// isInputError reports whether err was caused by the request content.
func isInputError(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidInput) ||
		errors.Is(err, apperrors.ErrInvalidDateRange) ||
		errors.Is(err, apperrors.ErrInvalidDateFormat) ||
		errors.Is(err, apperrors.ErrZeroTotalWeight) ||
		errors.Is(err, apperrors.ErrUnknownRiskProfile)
}

// respondServiceError maps a use case failure to 400 for input errors and to
// a 500 carrying only the operation's generic message otherwise. The cause is
// logged, never sent.
func respondServiceError(w http.ResponseWriter, r *http.Request, failure, err error) {
	if isInputError(err) {
		respondValidationError(w, err)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("path", r.URL.Path).
		Msg(failure.Error())
	response.RespondError(w, http.StatusInternalServerError, failure.Error(), nil)
}
