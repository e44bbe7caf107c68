// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PromptGenerationsTotal counts weekly prompt generations by outcome
	// ("generated" or "fallback").
	PromptGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "newsroom_prompt_generations_total",
		Help: "Total number of weekly prompt generations by outcome",
	}, []string{"outcome"})

	// PromptLatency records the latency of external text-generation calls.
	PromptLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "newsroom_prompt_latency_seconds",
		Help:    "Latency of external text-generation calls in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
