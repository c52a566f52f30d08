// Package metrics provides Prometheus metrics for PostForge
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for PostForge
type Metrics struct {
	// Pipeline metrics
	GenerationRunsTotal *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	LLMCallsTotal       *prometheus.CounterVec
	LLMCallDuration     *prometheus.HistogramVec

	// Output metrics
	PostsGeneratedTotal prometheus.Counter
	ModerationHitsTotal prometheus.Counter

	// Session metrics
	ActiveSessions prometheus.Gauge
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{}

	m.GenerationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postforge_generation_runs_total",
			Help: "Total number of generation pipeline runs",
		},
		[]string{"status"},
	)

	m.GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "postforge_generation_duration_seconds",
			Help:    "End-to-end duration of generation pipeline runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	m.LLMCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postforge_llm_calls_total",
			Help: "Total number of LLM completions by pipeline step",
		},
		[]string{"step", "status"},
	)

	m.LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postforge_llm_call_duration_seconds",
			Help:    "Duration of individual LLM completions in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)

	m.PostsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postforge_posts_generated_total",
			Help: "Total number of post drafts produced after splitting and filtering",
		},
	)

	m.ModerationHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postforge_moderation_hits_total",
			Help: "Total number of posts altered by the banned-word filter",
		},
	)

	m.ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postforge_active_sessions",
			Help: "Number of sessions currently held in memory",
		},
	)

	return m
}

// RecordRun records a finished pipeline run with its status
func (m *Metrics) RecordRun(status string, duration time.Duration) {
	m.GenerationRunsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		m.GenerationDuration.Observe(duration.Seconds())
	}
}

// RecordLLMCall records a single completion attempt for one pipeline step
func (m *Metrics) RecordLLMCall(step string, status string, duration time.Duration) {
	m.LLMCallsTotal.WithLabelValues(step, status).Inc()
	m.LLMCallDuration.WithLabelValues(step).Observe(duration.Seconds())
}
