// Package metrics records Prometheus metrics for model calls and plan generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

// Recorder holds the application's Prometheus collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseBytes   *prometheus.HistogramVec
	plansTotal      *prometheus.CounterVec
	missingSection  *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// NewRecorder registers the collectors with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitsync_llm_requests_total",
				Help: "Total number of model requests by model, operation and outcome",
			},
			[]string{"model", "operation", "outcome"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitsync_llm_request_duration_seconds",
				Help:    "Duration of model requests in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"model", "operation"},
		),
		responseBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fitsync_llm_response_bytes",
				Help:    "Size of model responses in bytes",
				Buckets: prometheus.ExponentialBuckets(256, 2, 8),
			},
			[]string{"operation"},
		),
		plansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitsync_plans_generated_total",
				Help: "Total number of plans stored, by kind and style",
			},
			[]string{"kind", "style"},
		),
		missingSection: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fitsync_plan_missing_section_total",
				Help: "Decoded plan responses rejected for lacking their top-level section",
			},
			[]string{"operation"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fitsync_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
}

// ObserveRequest records one model call
func (r *Recorder) ObserveRequest(model, operation, outcome string, responseSize int, duration time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(model, operation, outcome).Inc()
	r.requestDuration.WithLabelValues(model, operation).Observe(duration.Seconds())
	if outcome != OutcomeTransportError {
		r.responseBytes.WithLabelValues(operation).Observe(float64(responseSize))
	}
}

// IncPlan counts a stored plan
func (r *Recorder) IncPlan(kind, style string) {
	if r == nil {
		return
	}
	r.plansTotal.WithLabelValues(kind, style).Inc()
}

// IncMissingSection counts a decoded plan without its top-level section.
// The model call itself was already recorded by ObserveRequest.
func (r *Recorder) IncMissingSection(operation string) {
	if r == nil {
		return
	}
	r.missingSection.WithLabelValues(operation).Inc()
}

// IncRateLimited counts a request rejected by the rate limiter
func (r *Recorder) IncRateLimited() {
	if r == nil {
		return
	}
	r.rateLimited.Inc()
}
