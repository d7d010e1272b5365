package routegraph

import (
	"sort"
)

// Mode returns the node mode the graph was built with
func (g *Graph) Mode() NodeMode {
	return g.mode
}

// NodeCount returns the number of airports in the graph
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct undirected routes
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AirportCount returns the number of distinct airport ids in the cities file
func (g *Graph) AirportCount() int {
	return g.airports
}

// Nodes returns airport ids in insertion order. The slice must not be modified.
func (g *Graph) Nodes() []int64 {
	return g.order
}

// Position returns the insertion index of a node, used for stable tie-breaks
func (g *Graph) Position(id int64) (int, bool) {
	pos, ok := g.index[id]
	return pos, ok
}

// HasNode reports whether id is a node of the graph
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether the undirected route a-b exists
func (g *Graph) HasEdge(a, b int64) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// Edges returns all canonical edges sorted by (A, B)
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// Neighbors returns the adjacent airports sorted ascending. A self-loop lists
// the node itself once. The slice must not be modified.
func (g *Graph) Neighbors(id int64) []int64 {
	return g.adjacency[id]
}

// Degree returns the number of route endpoints at id; a self-loop counts twice
func (g *Graph) Degree(id int64) int {
	d := len(g.adjacency[id])
	if g.selfLoops[id] {
		d++
	}
	return d
}

// Name returns the airport name for id, if the cities file has one
func (g *Graph) Name(id int64) (string, bool) {
	name, ok := g.names[id]
	return name, ok
}

// Lookup resolves an IATA code to an airport id using the cities file
func (g *Graph) Lookup(code string) (int64, bool) {
	id, ok := g.codes[code]
	return id, ok
}

// Names maps ids to airport names, dropping ids the cities file does not name
func (g *Graph) Names(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := g.names[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
