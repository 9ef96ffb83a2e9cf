package service

import (
	"context"
	"time"

	"github.com/ndewijer/FinLedge-Backend/internal/cache"
	"github.com/ndewijer/FinLedge-Backend/internal/model"
	"github.com/ndewijer/FinLedge-Backend/internal/version"
)

const healthProbeKey = "health:probe"

// SystemService handles system-related operations
type SystemService struct {
	cache        cache.Service
	cacheBackend string
	liveData     bool
	now          func() time.Time
}

// NewSystemService creates a new SystemService. c may be nil when caching is disabled.
func NewSystemService(c cache.Service, cacheBackend string, liveData bool) *SystemService {
	return &SystemService{
		cache:        c,
		cacheBackend: cacheBackend,
		liveData:     liveData,
		now:          time.Now,
	}
}

// CheckHealth reports every analytics service as active and probes the cache.
// A failing cache degrades the service without taking it down, since market
// data is fetched directly when the cache is unreachable.
func (s *SystemService) CheckHealth(ctx context.Context) model.HealthResponse {
	services := map[string]string{
		"lstm":      "active",
		"var":       "active",
		"aif":       "active",
		"sentiment": "active",
	}

	if s.liveData {
		services["marketData"] = "live"
	} else {
		services["marketData"] = "simulated"
	}

	status := "healthy"
	switch {
	case s.cache == nil || s.cacheBackend == "none":
		services["cache"] = "disabled"
	default:
		if _, err := s.cache.Exists(ctx, healthProbeKey); err != nil {
			services["cache"] = "disconnected"
			status = "degraded"
		} else {
			services["cache"] = "connected"
		}
	}

	return model.HealthResponse{
		Status:    status,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Version:   s.CheckVersion(),
		Services:  services,
	}
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}

// Docs lists the public endpoints.
func (s *SystemService) Docs() model.DocsResponse {
	return model.DocsResponse{
		Title:   "FinLedge API Documentation",
		Version: s.CheckVersion(),
		Endpoints: map[string]string{
			"/api/health":             "GET - Health check",
			"/api/docs":               "GET - API documentation",
			"/api/lstm-prediction":    "POST - LSTM stock price prediction",
			"/api/var-analysis":       "POST - Value-at-Risk portfolio analysis",
			"/api/aif-recommendation": "POST - Alternative Investment Fund recommendations",
			"/api/sentiment-analysis": "POST - Stock sentiment analysis",
			"/metrics":                "GET - Prometheus metrics",
		},
		Note: "All POST endpoints require JSON body with specific parameters",
	}
}
