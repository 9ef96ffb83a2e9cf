package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/FinLedge-Backend/internal/api/middleware"
	"github.com/ndewijer/FinLedge-Backend/internal/api/response"
	"github.com/ndewijer/FinLedge-Backend/internal/config"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
)

// slowRequestThreshold marks requests logged as slow.
const slowRequestThreshold = 2 * time.Second

// Services groups the use cases served by the router.
type Services struct {
	System     *service.SystemService
	Prediction *service.PredictionService
	Risk       *service.RiskService
	AIF        *service.AIFService
	Sentiment  *service.SentimentService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log.With().Str("component", "http").Logger(), slowRequestThreshold))
	r.Use(custommiddleware.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.SecurityHeaders)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		systemHandler := handlers.NewSystemHandler(services.System)
		r.Get("/health", systemHandler.Health)
		r.Get("/docs", systemHandler.Docs)

		r.Post("/lstm-prediction", handlers.NewPredictionHandler(services.Prediction).Predict)
		r.Post("/var-analysis", handlers.NewRiskHandler(services.Risk).AnalyzeVaR)
		r.Post("/aif-recommendation", handlers.NewAIFHandler(services.AIF).Recommend)
		r.Post("/sentiment-analysis", handlers.NewSentimentHandler(services.Sentiment).Analyze)

		r.NotFound(response.RespondNotFound)
		r.MethodNotAllowed(response.RespondNotFound)
	})

	return r
}
