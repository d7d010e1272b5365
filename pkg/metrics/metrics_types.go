package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for one analysis run
type Registry struct {
	// Dataset Metrics
	DatasetRowsTotal   *prometheus.CounterVec
	DatasetErrorsTotal *prometheus.CounterVec

	// Graph Metrics
	GraphNodes            *prometheus.GaugeVec
	GraphEdges            *prometheus.GaugeVec
	GraphComponents       *prometheus.GaugeVec
	LargestComponentNodes *prometheus.GaugeVec

	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initDatasetMetrics()
	r.initGraphMetrics()
	r.initQueryMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
