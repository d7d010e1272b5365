package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDatasetMetrics() {
	r.DatasetRowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegraph_dataset_rows_total",
			Help: "Total number of dataset rows parsed",
		},
		[]string{"file"},
	)

	r.DatasetErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegraph_dataset_errors_total",
			Help: "Total number of dataset files that failed to load",
		},
		[]string{"file"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "routegraph_graph_nodes",
			Help: "Number of airports in the built graph",
		},
		[]string{"mode"},
	)

	r.GraphEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "routegraph_graph_edges",
			Help: "Number of undirected routes in the built graph",
		},
		[]string{"mode"},
	)

	r.GraphComponents = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "routegraph_graph_components",
			Help: "Number of connected components in the built graph",
		},
		[]string{"mode"},
	)

	r.LargestComponentNodes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "routegraph_largest_component_nodes",
			Help: "Number of airports in the largest connected component",
		},
		[]string{"mode"},
	)
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routegraph_queries_total",
			Help: "Total number of analysis queries executed",
		},
		[]string{"query", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routegraph_query_duration_seconds",
			Help:    "Analysis query duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"query"},
	)
}
