// Package metrics holds the Prometheus collectors shared by the service.
// Collectors register with the default registry, which the API server exposes
// on its metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fortune"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Outcome labels for FortuneInvocations.
const (
	OutcomeSuccess         = "success"
	OutcomeExecutionFailed = "execution_failed"
	OutcomeDecodeFailed    = "decode_failed"
	OutcomeRejected        = "rejected"
)

//nolint: gochecknoglobals
var (
	// FortuneInvocations counts fortune requests by outcome. Rejected requests
	// never reach the external program.
	FortuneInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invocations_total",
		Help:      "Fortune requests by outcome.",
	}, []string{"outcome"})

	// FortuneDuration observes how long the external fortune program runs.
	FortuneDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "program_duration_seconds",
		Help:      "Wall time of the external fortune program.",
		Buckets:   DefaultBuckets,
	})
)
