package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "questionnaire_service"

var (
	SessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Number of questionnaire wizard sessions started.",
		},
	)

	GroupSubmits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "group_submits_total",
			Help:      "Number of questionnaire group submissions by outcome.",
		},
		[]string{"outcome"},
	)

	FHIRRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fhir_request_duration_seconds",
			Help:      "Latency of calls to the FHIR server.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

const (
	OutcomeSaved    = "saved"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Calling it more
// than once is a no-op.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SessionsStarted, GroupSubmits, FHIRRequestDuration, HTTPRequestDuration)
	})
}

func ObserveFHIRRequest(resource, method, status string, start time.Time) {
	FHIRRequestDuration.WithLabelValues(resource, method, status).Observe(time.Since(start).Seconds())
}
