package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworkNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ppi_network_nodes_total",
			Help: "Number of nodes in the most recently assembled network",
		},
	)

	r.NetworkEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ppi_network_edges_total",
			Help: "Number of edges in the most recently assembled network",
		},
	)

	r.NetworksAssembledTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ppi_networks_assembled_total",
			Help: "Total number of networks assembled",
		},
	)

	r.EdgesMergedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ppi_edges_merged_total",
			Help: "Total number of parallel interaction rows collapsed during assembly",
		},
	)

	r.SelfInteractionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ppi_self_interactions_total",
			Help: "Total number of self-interaction edges assembled",
		},
	)
}
