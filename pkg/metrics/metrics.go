// Package metrics defines Prometheus metrics for the peering operator:
// keep-alive traffic, peering event processing, dead-peer cleanup, and the
// current freeze state. All collectors are registered with the
// controller-runtime registry so they show up on the manager's metrics
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	KeepalivesSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kopf_peering_keepalives_total",
		Help: "Total number of keep-alive writes to the peering object",
	}, []string{"peering", "result"})
	EventsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kopf_peering_events_total",
		Help: "Total number of peering object changes processed",
	})
	DeadPeersCleaned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kopf_peering_dead_peers_cleaned_total",
		Help: "Total number of dead peer entries removed from the peering object",
	})
	PriorityConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kopf_peering_priority_conflicts_total",
		Help: "Total number of same-priority peer collisions observed",
	})
	FreezeState = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "kopf_peering_frozen",
		Help: "Whether this operator is currently frozen in favour of a peer (1) or active (0)",
	})
)

func init() {
	ctrlmetrics.Registry.MustRegister(
		KeepalivesSent,
		EventsProcessed,
		DeadPeersCleaned,
		PriorityConflicts,
		FreezeState,
	)
}
