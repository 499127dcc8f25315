package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	Checks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achecker_checks_total",
			Help: "Total accessibility checks by outcome",
		},
		[]string{"outcome"},
	)

	FetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "achecker_fetch_latency_seconds",
			Help:    "Remote checking service latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	FetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achecker_fetch_errors_total",
			Help: "Total failed calls to the remote checking service",
		},
		[]string{"endpoint"},
	)

	Findings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achecker_findings_total",
			Help: "Result entries seen while classifying reports",
		},
		[]string{"kind"},
	)
)

// Check outcomes.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidInput      = "invalid_input"
	OutcomeFetchError        = "fetch_error"
	OutcomeInvalidCredential = "invalid_credential"
	OutcomeParseError        = "parse_error"
)

// Finding kinds.
const (
	KindError            = "error"
	KindPotentialProblem = "potential_problem"
	KindIgnored          = "ignored"
	KindDropped          = "dropped"
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(Checks, FetchLatency, FetchErrors, Findings)
	})
}
