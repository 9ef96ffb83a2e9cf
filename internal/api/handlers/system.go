package handlers

import (
	"net/http"

	"github.com/ndewijer/FinLedge-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health reports liveness, version and the state of each service.
// A degraded cache still answers 200.
//
// Endpoint: GET /api/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.systemService.CheckHealth(r.Context()))
}

// Docs lists the public endpoints.
//
// Endpoint: GET /api/docs
// Response: 200 OK with DocsResponse
func (h *SystemHandler) Docs(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.systemService.Docs())
}
