package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordDatasetRows adds parsed rows for a dataset file
func (r *Registry) RecordDatasetRows(file string, rows int) {
	r.DatasetRowsTotal.WithLabelValues(file).Add(float64(rows))
}

// RecordDatasetError counts a dataset file that failed to load
func (r *Registry) RecordDatasetError(file string) {
	r.DatasetErrorsTotal.WithLabelValues(file).Inc()
}

// RecordGraph records the shape of a graph built in the given node mode
func (r *Registry) RecordGraph(mode string, nodes, edges, components, largest int) {
	r.GraphNodes.WithLabelValues(mode).Set(float64(nodes))
	r.GraphEdges.WithLabelValues(mode).Set(float64(edges))
	r.GraphComponents.WithLabelValues(mode).Set(float64(components))
	r.LargestComponentNodes.WithLabelValues(mode).Set(float64(largest))
}

// RecordQuery records a query execution
func (r *Registry) RecordQuery(query, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(query, status).Inc()
	r.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// WriteTextfile writes all metrics in the Prometheus text format, suitable for
// the node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
