// Package routegraph builds the undirected airport graph from parsed dataset
// rows and extracts its connected components.
//
// A Graph is immutable once built. Node order is the order in which airports
// were first seen, which makes every traversal and tie-break reproducible.
package routegraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned when a graph has no nodes, so no component exists
	ErrEmptyGraph = errors.New("graph has no components")
	// ErrUnknownMode is returned when a node mode name cannot be parsed
	ErrUnknownMode = errors.New("unknown node mode")
)

// NodeMode selects which airports become graph nodes
type NodeMode int

const (
	// NodeInclusive keeps every airport of the cities file, even those without routes
	NodeInclusive NodeMode = iota
	// EdgeOnly keeps only airports that appear in at least one route
	EdgeOnly
)

// String returns the configuration name of the mode
func (m NodeMode) String() string {
	switch m {
	case NodeInclusive:
		return "node-inclusive"
	case EdgeOnly:
		return "edge-only"
	default:
		return "unknown"
	}
}

// ParseNodeMode parses "node-inclusive" or "edge-only"
func ParseNodeMode(s string) (NodeMode, error) {
	switch s {
	case "node-inclusive":
		return NodeInclusive, nil
	case "edge-only":
		return EdgeOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Edge is an undirected route in canonical form (A <= B). A == B is a self-loop.
type Edge struct {
	A int64
	B int64
}

// NewEdge returns the canonical edge for a route in either direction
func NewEdge(a, b int64) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// IsSelfLoop reports whether both endpoints are the same airport
func (e Edge) IsSelfLoop() bool {
	return e.A == e.B
}

// Component is a maximal set of connected airports, sorted by id
type Component struct {
	Nodes []int64
}

// Size returns the number of airports in the component
func (c Component) Size() int {
	return len(c.Nodes)
}

// MinID returns the smallest airport id in the component
func (c Component) MinID() int64 {
	if len(c.Nodes) == 0 {
		return 0
	}
	return c.Nodes[0]
}

// Graph is an undirected airport graph
type Graph struct {
	mode      NodeMode
	order     []int64
	index     map[int64]int
	edges     map[Edge]struct{}
	adjacency map[int64][]int64
	selfLoops map[int64]bool

	names    map[int64]string
	codes    map[string]int64
	airports int
}
