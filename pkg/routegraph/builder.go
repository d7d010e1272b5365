package routegraph

import (
	"sort"

	"github.com/dd0wney/cluso-routegraph/pkg/dataset"
)

type builder struct {
	g *Graph
}

func newBuilder(mode NodeMode) *builder {
	return &builder{g: &Graph{
		mode:      mode,
		order:     make([]int64, 0),
		index:     make(map[int64]int),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[int64][]int64),
		selfLoops: make(map[int64]bool),
		names:     make(map[int64]string),
		codes:     make(map[string]int64),
	}}
}

func (b *builder) addNode(id int64) {
	if _, ok := b.g.index[id]; ok {
		return
	}
	b.g.index[id] = len(b.g.order)
	b.g.order = append(b.g.order, id)
}

func (b *builder) addEdge(e Edge) {
	b.addNode(e.A)
	b.addNode(e.B)
	if _, ok := b.g.edges[e]; ok {
		return
	}
	b.g.edges[e] = struct{}{}
	if e.IsSelfLoop() {
		b.g.selfLoops[e.A] = true
		b.g.adjacency[e.A] = append(b.g.adjacency[e.A], e.A)
		return
	}
	b.g.adjacency[e.A] = append(b.g.adjacency[e.A], e.B)
	b.g.adjacency[e.B] = append(b.g.adjacency[e.B], e.A)
}

func (b *builder) build() *Graph {
	for id, neighbors := range b.g.adjacency {
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
		b.g.adjacency[id] = neighbors
	}
	return b.g
}

// Build creates the route graph.
//
// In NodeInclusive mode every airport id becomes a node, in file order, followed
// by route endpoints missing from the cities file. In EdgeOnly mode nodes are the
// route endpoints in order of first appearance. Routes are canonicalised so
// reversed and repeated rows collapse into one edge. Names and codes are indexed
// from all airports in both modes, first occurrence winning.
func Build(airports []dataset.Airport, routes []dataset.RawRoute, mode NodeMode) *Graph {
	b := newBuilder(mode)

	seen := make(map[int64]bool, len(airports))
	for _, a := range airports {
		if !seen[a.ID] {
			seen[a.ID] = true
			b.g.names[a.ID] = a.Name
		}
		if _, ok := b.g.codes[a.Code]; !ok {
			b.g.codes[a.Code] = a.ID
		}
		if mode == NodeInclusive {
			b.addNode(a.ID)
		}
	}
	b.g.airports = len(seen)

	for _, r := range routes {
		b.addNode(r.From)
		b.addNode(r.To)
		b.addEdge(NewEdge(r.From, r.To))
	}

	return b.build()
}

// BuildDataset builds the graph for a loaded dataset
func BuildDataset(ds *dataset.Dataset, mode NodeMode) *Graph {
	return Build(ds.Airports, ds.Routes, mode)
}

// BuildFromEdges creates an edge-only graph from edges that may or may not be
// canonical already. Rebuilding from g.Edges() yields the same edge set.
func BuildFromEdges(edges []Edge) *Graph {
	b := newBuilder(EdgeOnly)
	for _, e := range edges {
		b.addEdge(NewEdge(e.A, e.B))
	}
	return b.build()
}
