// Package metrics holds the Prometheus collectors of the analytics engine.
// HTTP level collectors live in the api middleware package.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "finledge"

var (
	once sync.Once

	AnalyticsLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "latency_seconds",
			Help:      "Latency of analytics use cases",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	AnalyticsErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "errors_total",
			Help:      "Failed analytics use cases",
		},
		[]string{"operation"},
	)

	MarketDataFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "marketdata",
			Name:      "fetches_total",
			Help:      "Market data series served, by source",
		},
		[]string{"source"},
	)

	MarketDataFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "marketdata",
			Name:      "fallbacks_total",
			Help:      "Live fetches that fell back to simulation, by reason",
		},
		[]string{"reason"},
	)
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(AnalyticsLatency, AnalyticsErrors, MarketDataFetches, MarketDataFallbacks)
	})
}

// ObserveOperation records the latency of an operation and counts it as failed when err is non-nil.
func ObserveOperation(operation string, start time.Time, err error) {
	AnalyticsLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		AnalyticsErrors.WithLabelValues(operation).Inc()
	}
}
