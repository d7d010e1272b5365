package analysis

import (
	"time"

	"github.com/dd0wney/cluso-routegraph/pkg/dataset"
	"github.com/dd0wney/cluso-routegraph/pkg/logging"
	"github.com/dd0wney/cluso-routegraph/pkg/metrics"
	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

// graphView is a built graph with its components and largest component.
// largestErr is set when the graph has no nodes.
type graphView struct {
	graph      *routegraph.Graph
	components []routegraph.Component
	largest    *routegraph.Graph
	largestErr error
}

// Analyzer runs queries against one dataset
type Analyzer struct {
	dataset *dataset.Dataset
	modes   Modes
	logger  logging.Logger
	metrics *metrics.Registry
	views   map[routegraph.NodeMode]*graphView
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithModes sets the node mode per query
func WithModes(modes Modes) Option {
	return func(a *Analyzer) {
		a.modes = modes
	}
}

// WithLogger sets the logger used for graph builds and queries
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger.With(logging.Component("analysis"))
		}
	}
}

// WithMetrics records graph shapes and query outcomes in registry
func WithMetrics(registry *metrics.Registry) Option {
	return func(a *Analyzer) {
		a.metrics = registry
	}
}

// New creates an Analyzer for ds. Graphs are built on first use.
func New(ds *dataset.Dataset, opts ...Option) *Analyzer {
	a := &Analyzer{
		dataset: ds,
		modes:   DefaultModes(),
		logger:  logging.NewNopLogger(),
		views:   make(map[routegraph.NodeMode]*graphView),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Modes returns the node mode used by each query
func (a *Analyzer) Modes() Modes {
	return a.modes
}

// Graph returns the full graph for mode, building it if needed
func (a *Analyzer) Graph(mode routegraph.NodeMode) *routegraph.Graph {
	return a.view(mode).graph
}

// LargestComponent returns the largest-component subgraph for mode
func (a *Analyzer) LargestComponent(mode routegraph.NodeMode) (*routegraph.Graph, error) {
	v := a.view(mode)
	return v.largest, v.largestErr
}

func (a *Analyzer) view(mode routegraph.NodeMode) *graphView {
	if v, ok := a.views[mode]; ok {
		return v
	}

	timer := logging.StartTimer(a.logger, "graph built", logging.Mode(mode.String()))

	g := routegraph.BuildDataset(a.dataset, mode)
	largest, components, err := routegraph.LargestSubgraph(g)
	v := &graphView{
		graph:      g,
		components: components,
		largest:    largest,
		largestErr: err,
	}
	a.views[mode] = v

	largestNodes := 0
	if largest != nil {
		largestNodes = largest.NodeCount()
	}
	timer.End(
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("components", len(components)),
		logging.Int("largest_component_nodes", largestNodes),
	)
	if a.metrics != nil {
		a.metrics.RecordGraph(mode.String(), g.NodeCount(), g.EdgeCount(), len(components), largestNodes)
	}

	return v
}

// track logs the start of a query and returns the function that logs its end
// and records its outcome.
func (a *Analyzer) track(query string, mode routegraph.NodeMode, fields ...logging.Field) func(err error) {
	base := append([]logging.Field{logging.Query(query), logging.Mode(mode.String())}, fields...)
	a.logger.Debug("query started", base...)
	timer := logging.StartTimer(a.logger, "query finished", base...)

	return func(err error) {
		var elapsed time.Duration
		status := statusSuccess
		if err != nil {
			status = statusError
			elapsed = timer.EndError(err)
		} else {
			elapsed = timer.End()
		}
		if a.metrics != nil {
			a.metrics.RecordQuery(query, status, elapsed)
		}
	}
}
