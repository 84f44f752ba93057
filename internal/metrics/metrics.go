// Package metrics exposes Prometheus instrumentation for the prorate API.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "prorate_"

	ResultSuccess    = "success"
	ResultError      = "error"
	ResultDegenerate = "degenerate"
	ResultInvalid    = "invalid"
)

var (
	registerOnce sync.Once

	planRequests *prometheus.CounterVec
	planLatency  *prometheus.HistogramVec
	planSeed     prometheus.Histogram

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	leadSubmissions *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		planRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "plan_requests_total",
				Help: "Total plan requests by result",
			},
			[]string{"result"},
		)
		planLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "plan_latency_seconds",
				Help:    "Plan computation latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"result"},
		)
		planSeed = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "plan_seed_dollars",
				Help:    "Initial savings required by served plans",
				Buckets: []float64{0, 500, 1000, 2500, 5000, 10000, 25000},
			},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total plan exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Plan export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)
		leadSubmissions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "lead_submissions_total",
				Help: "Lead submissions by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			planRequests,
			planLatency,
			planSeed,
			exportTotal,
			exportLatency,
			leadSubmissions,
		)
	})
}

// ObservePlan records a plan request, its latency, and the seed it produced.
func ObservePlan(result string, duration time.Duration, seed float64) {
	if result == "" {
		result = ResultSuccess
	}
	if planRequests != nil {
		planRequests.WithLabelValues(result).Inc()
	}
	if planLatency != nil {
		planLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
	if planSeed != nil && result == ResultSuccess {
		planSeed.Observe(seed)
	}
}

// ObserveExport records an export by format.
func ObserveExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}

// IncLeadSubmission counts a lead submission.
func IncLeadSubmission(result string) {
	if result == "" {
		result = "unknown"
	}
	if leadSubmissions != nil {
		leadSubmissions.WithLabelValues(result).Inc()
	}
}
