package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	MarketData MarketDataConfig
	Cache      CacheConfig
	Prefetch   PrefetchConfig
	Analytics  AnalyticsConfig
	Tickers    *TickerTable
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// MarketDataConfig controls the live data source and the simulator fallback.
type MarketDataConfig struct {
	Live        bool
	Timeout     time.Duration
	YahooURL    string
	Seed        uint64 // 0 seeds the simulator from entropy
	TickersFile string
}

// CacheConfig selects the backend used to cache live market data.
type CacheConfig struct {
	Backend       string // none, memory or redis
	TTL           time.Duration
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int
}

// PrefetchConfig controls the scheduled cache warm-up.
type PrefetchConfig struct {
	Schedule string // cron expression, empty disables prefetching
	Tickers  []string
	Days     int
}

// AnalyticsConfig holds tunables of the quantitative engine.
type AnalyticsConfig struct {
	MonteCarloSimulations int
	AIFCatalogFile        string // empty uses the embedded catalog
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("LOG_PRETTY", false),
		},
		MarketData: MarketDataConfig{
			Live:        getEnvAsBool("MARKET_DATA_LIVE", true),
			Timeout:     getEnvAsDuration("MARKET_DATA_TIMEOUT", 5*time.Second),
			YahooURL:    getEnv("YAHOO_BASE_URL", ""),
			TickersFile: getEnv("TICKERS_FILE", ""),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
			TTL:           getEnvAsDuration("CACHE_TTL", 15*time.Minute),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnvAsInt("REDIS_PORT", 6379),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Prefetch: PrefetchConfig{
			Schedule: getEnv("PREFETCH_SCHEDULE", ""),
			Tickers:  getEnvAsSlice("PREFETCH_TICKERS", nil),
			Days:     getEnvAsInt("PREFETCH_DAYS", 500),
		},
		Analytics: AnalyticsConfig{
			MonteCarloSimulations: getEnvAsInt("MONTE_CARLO_SIMULATIONS", 10000),
			AIFCatalogFile:        getEnv("AIF_CATALOG_FILE", ""),
		},
	}

	seed, err := getEnvAsUint64("SIMULATION_SEED", 0)
	if err != nil {
		return nil, err
	}
	config.MarketData.Seed = seed

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	tickers, err := LoadTickerTable(config.MarketData.TickersFile)
	if err != nil {
		return nil, err
	}
	config.Tickers = tickers

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the loaded values are usable
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of none, memory, redis (got %q)", c.Cache.Backend)
	}

	if c.MarketData.Timeout <= 0 {
		return fmt.Errorf("MARKET_DATA_TIMEOUT must be positive")
	}

	if c.Analytics.MonteCarloSimulations < 100 {
		return fmt.Errorf("MONTE_CARLO_SIMULATIONS must be at least 100")
	}

	if c.Prefetch.Schedule != "" && len(c.Prefetch.Tickers) == 0 {
		return fmt.Errorf("PREFETCH_TICKERS is required when PREFETCH_SCHEDULE is set")
	}

	if c.Tickers == nil {
		return fmt.Errorf("ticker table is not loaded")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsUint64 rejects negative or malformed values instead of wrapping them
func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer (got %q)", key, value)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated variable, dropping empty entries
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
