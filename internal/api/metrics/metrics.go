// Package metrics defines all custom Prometheus metrics for the admin
// console. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// UpstreamRequestsTotal counts calls issued to the remote scheduling API.
// Labels:
//   - operation: gateway operation name (e.g. "list_users", "sign_in")
//   - outcome: "ok", "rejected" (non-2xx response), or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the scheduling API.",
	},
	[]string{"operation", "outcome"},
)

// UpstreamRequestDuration measures the latency of scheduling API calls.
// Label:
//   - operation: gateway operation name
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of scheduling API calls, request to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// LoginAttemptsTotal counts console login attempts.
// Label:
//   - result: "success", "rejected", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of operator login attempts, by result.",
	},
	[]string{"result"},
)

// SessionAuthenticated reports whether the console currently holds an
// authenticated operator session (1) or is anonymous (0).
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "1 while the operator session is authenticated, 0 otherwise.",
	},
)
