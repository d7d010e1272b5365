package algorithms

import (
	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

// buildGraph creates an edge-only route graph from endpoint pairs
func buildGraph(pairs ...[2]int64) *routegraph.Graph {
	edges := make([]routegraph.Edge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, routegraph.NewEdge(p[0], p[1]))
	}
	return routegraph.BuildFromEdges(edges)
}

// twoCliquesWithBridge builds K4 {1,2,3,4} and K4 {5,6,7,8} joined through
// node 9 (1-9-5). Nodes 1 and 5 have the highest degree, node 9 the highest
// betweenness.
func twoCliquesWithBridge() *routegraph.Graph {
	return buildGraph(
		[2]int64{1, 2}, [2]int64{1, 3}, [2]int64{1, 4}, [2]int64{2, 3}, [2]int64{2, 4}, [2]int64{3, 4},
		[2]int64{5, 6}, [2]int64{5, 7}, [2]int64{5, 8}, [2]int64{6, 7}, [2]int64{6, 8}, [2]int64{7, 8},
		[2]int64{1, 9}, [2]int64{9, 5},
	)
}

// star builds a star with center 0 and the given number of leaves
func star(leaves int) *routegraph.Graph {
	pairs := make([][2]int64, 0, leaves)
	for i := 1; i <= leaves; i++ {
		pairs = append(pairs, [2]int64{0, int64(i)})
	}
	return buildGraph(pairs...)
}
