package routegraph

import (
	"container/list"
	"sort"
)

// Components finds all connected components. Flood fill is seeded in node
// insertion order, so components are returned in order of their first node.
func Components(g *Graph) []Component {
	visited := make(map[int64]bool, g.NodeCount())
	components := make([]Component, 0)

	for _, start := range g.order {
		if visited[start] {
			continue
		}

		nodes := make([]int64, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			nodeID, ok := queue.Remove(queue.Front()).(int64)
			if !ok {
				continue
			}
			nodes = append(nodes, nodeID)

			for _, neighbor := range g.adjacency[nodeID] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
		components = append(components, Component{Nodes: nodes})
	}

	return components
}

// Largest returns the component with the most airports. Ties go to the
// component with the smallest minimum airport id.
func Largest(components []Component) (Component, error) {
	if len(components) == 0 {
		return Component{}, ErrEmptyGraph
	}

	best := components[0]
	for _, c := range components[1:] {
		if c.Size() > best.Size() || (c.Size() == best.Size() && c.MinID() < best.MinID()) {
			best = c
		}
	}
	return best, nil
}

// Subgraph returns the subgraph induced by nodes: only those airports and the
// routes with both endpoints among them. Parent node order is preserved.
func Subgraph(g *Graph, nodes []int64) *Graph {
	keep := make(map[int64]bool, len(nodes))
	for _, id := range nodes {
		if g.HasNode(id) {
			keep[id] = true
		}
	}

	b := newBuilder(g.mode)
	b.g.names = g.names
	b.g.codes = g.codes
	b.g.airports = g.airports

	for _, id := range g.order {
		if keep[id] {
			b.addNode(id)
		}
	}
	for _, e := range g.Edges() {
		if keep[e.A] && keep[e.B] {
			b.addEdge(e)
		}
	}

	return b.build()
}

// LargestSubgraph returns the subgraph of the largest component together with
// the full component list.
func LargestSubgraph(g *Graph) (*Graph, []Component, error) {
	components := Components(g)
	largest, err := Largest(components)
	if err != nil {
		return nil, components, err
	}
	return Subgraph(g, largest.Nodes), components, nil
}
