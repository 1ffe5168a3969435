package templatedef

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	paramsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magnum",
			Subsystem: "templatedef",
			Name:      "params_total",
			Help:      "Total number of parameter set builds by result",
		},
		[]string{"driver", "result"},
	)

	paramsDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "magnum",
			Subsystem: "templatedef",
			Name:      "params_duration_seconds",
			Help:      "Duration of parameter set builds in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"driver"},
	)

	policyFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "magnum",
			Subsystem: "templatedef",
			Name:      "policy_fallback_total",
			Help:      "Total number of times the built-in keystone auth policy was used after a policy file failure",
		},
	)

	outputBindingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magnum",
			Subsystem: "templatedef",
			Name:      "output_bindings_total",
			Help:      "Total number of stack outputs bound to node groups by role and output",
		},
		[]string{"role", "output"},
	)
)

func init() {
	prometheus.MustRegister(
		paramsTotal,
		paramsDuration,
		policyFallbackTotal,
		outputBindingsTotal,
	)
}

// recordParams records the outcome of a parameter set build.
func recordParams(err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	paramsTotal.WithLabelValues(Driver, result).Inc()
	paramsDuration.WithLabelValues(Driver).Observe(duration.Seconds())
}
