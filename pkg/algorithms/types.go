// Package algorithms implements the unweighted graph algorithms used by the
// route analyses: BFS distances and paths, eccentricity and diameter, degree
// statistics and Brandes betweenness centrality.
//
// Every algorithm visits nodes in a fixed order (ascending id, or the graph's
// own node order where noted) so results are reproducible run to run.
package algorithms

import (
	"errors"
)

var (
	ErrEmptyGraph   = errors.New("graph is empty")
	ErrNodeNotFound = errors.New("node not found")
	ErrNoPath       = errors.New("no path between nodes")
	ErrDisconnected = errors.New("graph is not connected")
)

// Graph is the read-only view the algorithms need. Neighbors must return ids
// sorted ascending. Degree counts route endpoints, so a self-loop adds two.
// *routegraph.Graph satisfies this.
type Graph interface {
	Nodes() []int64
	HasNode(id int64) bool
	Neighbors(id int64) []int64
	Degree(id int64) int
}

// RankedNode holds a node and its score in a ranking
type RankedNode struct {
	NodeID int64
	Score  float64
}

// DegreeBucket is one point of the degree distribution
type DegreeBucket struct {
	Degree   int
	Count    int
	Fraction float64
}
