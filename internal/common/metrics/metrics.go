// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of query requests handled by the gateway",
		},
		[]string{"status"},
	)

	AgentInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_invocations_total",
			Help: "Total number of specialist agent invocations",
		},
		[]string{"agent_id", "outcome"},
	)

	AgentInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_invocation_duration_seconds",
			Help:    "Duration of specialist agent invocations in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 90},
		},
		[]string{"agent_id"},
	)

	ActionCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "action_calls_total",
			Help: "Total number of action-group function calls dispatched",
		},
		[]string{"function", "outcome"},
	)
)
