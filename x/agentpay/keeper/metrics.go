package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AgentPayMetrics holds all Prometheus metrics for the agentpay module
type AgentPayMetrics struct {
	// Listing metrics
	ListingsRegistered  prometheus.Counter
	ListingsDeactivated prometheus.Counter

	// Task metrics
	TasksCreated     prometheus.Counter
	TaskTransitions  *prometheus.CounterVec
	TasksExpiredAuto prometheus.Counter

	// Escrow metrics
	EscrowLocked    prometheus.Counter
	EscrowDisbursed *prometheus.CounterVec

	// ZK proof metrics
	ProofVerifications    *prometheus.CounterVec
	ProofVerificationTime *prometheus.HistogramVec
}

var (
	agentPayMetricsOnce sync.Once
	agentPayMetrics     *AgentPayMetrics
)

// NewAgentPayMetrics creates and registers agentpay metrics (singleton pattern)
func NewAgentPayMetrics() *AgentPayMetrics {
	agentPayMetricsOnce.Do(func() {
		agentPayMetrics = &AgentPayMetrics{
			ListingsRegistered: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "agentpay",
				Subsystem: "listing",
				Name:      "registered_total",
				Help:      "Total service listings registered",
			}),
			ListingsDeactivated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "agentpay",
				Subsystem: "listing",
				Name:      "deactivated_total",
				Help:      "Total service listings deactivated",
			}),
			TasksCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "agentpay",
				Subsystem: "task",
				Name:      "created_total",
				Help:      "Total tasks created",
			}),
			TaskTransitions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "agentpay",
					Subsystem: "task",
					Name:      "transitions_total",
					Help:      "Task status transitions by target status",
				},
				[]string{"status"},
			),
			TasksExpiredAuto: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "agentpay",
				Subsystem: "task",
				Name:      "expired_end_block_total",
				Help:      "Tasks expired by the end block crank",
			}),
			EscrowLocked: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "agentpay",
				Subsystem: "escrow",
				Name:      "locked_total",
				Help:      "Total amount locked into task escrow",
			}),
			EscrowDisbursed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "agentpay",
					Subsystem: "escrow",
					Name:      "disbursed_total",
					Help:      "Total amount paid out of escrow",
				},
				[]string{"reason"},
			),
			ProofVerifications: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "agentpay",
					Subsystem: "zk",
					Name:      "verifications_total",
					Help:      "Proof verifications by circuit and outcome",
				},
				[]string{"circuit", "result"},
			),
			ProofVerificationTime: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "agentpay",
					Subsystem: "zk",
					Name:      "verification_seconds",
					Help:      "Proof verification latency",
					Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
				},
				[]string{"circuit"},
			),
		}
	})
	return agentPayMetrics
}
