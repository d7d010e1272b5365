// Package analysis answers the route-network questions over a loaded dataset:
// network summary, degree ranking and distribution, diameter with its longest
// shortest path, point-to-point routes and betweenness ranking.
//
// An Analyzer builds each graph it needs once, in the node mode configured for
// the query, and reuses it for later queries in the same run.
package analysis

import (
	"errors"

	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

var (
	// ErrAirportNotFound is returned when an airport code is not in the cities file
	ErrAirportNotFound = errors.New("airport not found")
	// ErrNoRoute is returned when no sequence of flights joins two airports
	ErrNoRoute = errors.New("no route between airports")
)

// Query names used in logs and metrics
const (
	QuerySummary      = "summary"
	QueryDegree       = "degree"
	QueryDistribution = "distribution"
	QueryDiameter     = "diameter"
	QueryRoute        = "route"
	QueryBetweenness  = "betweenness"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Modes selects the node mode each query builds its graph with
type Modes struct {
	Summary      routegraph.NodeMode
	Degree       routegraph.NodeMode
	Distribution routegraph.NodeMode
	Diameter     routegraph.NodeMode
	Route        routegraph.NodeMode
	Betweenness  routegraph.NodeMode
}

// DefaultModes keeps isolated airports for the counting queries and uses the
// route-only graph for the path and centrality queries.
func DefaultModes() Modes {
	return Modes{
		Summary:      routegraph.NodeInclusive,
		Degree:       routegraph.NodeInclusive,
		Distribution: routegraph.NodeInclusive,
		Diameter:     routegraph.EdgeOnly,
		Route:        routegraph.EdgeOnly,
		Betweenness:  routegraph.EdgeOnly,
	}
}

// Summary describes the size of the network and of its largest component
type Summary struct {
	Mode         routegraph.NodeMode `json:"mode"`
	Airports     int                 `json:"airports"`
	Nodes        int                 `json:"nodes"`
	Edges        int                 `json:"edges"`
	Components   int                 `json:"components"`
	LargestNodes int                 `json:"largest_nodes"`
	LargestEdges int                 `json:"largest_edges"`
}

// DegreeRank is one airport in the degree ranking
type DegreeRank struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Degree int    `json:"degree"`
}

// CentralityRank is one airport in the betweenness ranking
type CentralityRank struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// DiameterResult holds the diameter of the largest component and one shortest
// path of that length
type DiameterResult struct {
	Diameter int      `json:"diameter"`
	IDs      []int64  `json:"ids"`
	Names    []string `json:"names"`
}

// RouteResult is the fewest-flights route between two airports
type RouteResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Hops  int      `json:"hops"`
	IDs   []int64  `json:"ids"`
	Names []string `json:"names"`
}
