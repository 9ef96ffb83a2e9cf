package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/FinLedge-Backend/internal/aif"
	"github.com/ndewijer/FinLedge-Backend/internal/api"
	"github.com/ndewijer/FinLedge-Backend/internal/cache"
	"github.com/ndewijer/FinLedge-Backend/internal/config"
	"github.com/ndewijer/FinLedge-Backend/internal/logger"
	"github.com/ndewijer/FinLedge-Backend/internal/marketdata"
	"github.com/ndewijer/FinLedge-Backend/internal/metrics"
	"github.com/ndewijer/FinLedge-Backend/internal/service"
	"github.com/ndewijer/FinLedge-Backend/internal/version"
	"github.com/ndewijer/FinLedge-Backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	metrics.Register()

	store, err := openCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Cache.Backend).Msg("Failed to open cache")
	}
	defer store.Close()

	log.Info().Str("backend", cfg.Cache.Backend).Msg("Cache ready")

	// Market data: live Yahoo prices behind the cache, simulator as fallback
	simulator := marketdata.NewSimulator(cfg.Tickers, cfg.MarketData.Seed)
	var (
		provider marketdata.Provider = simulator
		cached   *marketdata.CachedProvider
	)
	if cfg.MarketData.Live {
		client := yahoo.NewFinanceClient(cfg.MarketData.YahooURL, cfg.MarketData.Timeout)
		cached = marketdata.NewCachedProvider(marketdata.NewLiveProvider(client), store, cfg.Cache.TTL, log)
		provider = marketdata.NewFallbackProvider(cached, simulator, cfg.MarketData.Timeout, log)
	}

	catalog, err := aif.LoadCatalog(cfg.Analytics.AIFCatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AIF catalog")
	}

	// Create services
	services := api.Services{
		System:     service.NewSystemService(store, cfg.Cache.Backend, cfg.MarketData.Live),
		Prediction: service.NewPredictionService(provider, cfg.MarketData.Seed, log),
		Risk:       service.NewRiskService(provider, cfg.Analytics.MonteCarloSimulations, cfg.MarketData.Seed, log),
		AIF:        service.NewAIFService(catalog, log),
		Sentiment:  service.NewSentimentService(provider, cfg.Tickers, cfg.MarketData.Seed, log),
	}

	if cfg.Prefetch.Schedule != "" {
		if cached == nil {
			log.Warn().Msg("PREFETCH_SCHEDULE ignored: live market data is disabled")
		} else {
			prefetcher, err := marketdata.NewPrefetcher(cached, cfg.Prefetch.Schedule, cfg.Prefetch.Tickers, cfg.Prefetch.Days, cfg.MarketData.Timeout, log)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to schedule prefetch")
			}
			prefetcher.Start()
			defer prefetcher.Stop()
		}
	}

	// Create router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", cfg.Server.Addr).
			Str("version", version.Version).
			Bool("liveData", cfg.MarketData.Live).
			Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server exited")
}

// openCache returns the cache backend selected by CACHE_BACKEND.
func openCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx,
			cache.WithRedisAddr(cfg.Cache.RedisHost, cfg.Cache.RedisPort),
			cache.WithRedisPassword(cfg.Cache.RedisPassword),
			cache.WithRedisDB(cfg.Cache.RedisDB),
			cache.WithRedisPrefix("finledge"),
		)
		if err != nil {
			return nil, err
		}
		return rc, nil
	case "memory":
		return cache.NewMemoryCache(), nil
	default:
		return cache.NoopCache{}, nil
	}
}
