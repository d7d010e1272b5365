package algorithms

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-routegraph/pkg/dataset"
	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

func genRoutes() gopter.Gen {
	return gen.SliceOfN(30, gen.Struct(reflect.TypeOf(dataset.RawRoute{}), map[string]gopter.Gen{
		"From": gen.Int64Range(0, 10),
		"To":   gen.Int64Range(0, 10),
	}))
}

// connected builds the largest component of a random route list
func connected(routes []dataset.RawRoute) *routegraph.Graph {
	g, _, err := routegraph.LargestSubgraph(routegraph.Build(nil, routes, routegraph.EdgeOnly))
	if err != nil {
		return nil
	}
	return g
}

// validPath reports whether consecutive path nodes are joined by an edge
func validPath(g *routegraph.Graph, path []int64) bool {
	for i := 1; i < len(path); i++ {
		if !g.HasEdge(path[i-1], path[i]) {
			return false
		}
	}
	return true
}

// TestAlgorithmProperties verifies path, diameter and centrality invariants on
// random connected graphs
func TestAlgorithmProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("route length is symmetric and paths are valid", prop.ForAll(
		func(routes []dataset.RawRoute) bool {
			g := connected(routes)
			if g == nil {
				return true
			}
			nodes := g.Nodes()
			for _, a := range nodes {
				for _, b := range nodes {
					forward, err := ShortestPath(g, a, b)
					if err != nil {
						return false
					}
					backward, err := ShortestPath(g, b, a)
					if err != nil {
						return false
					}
					if len(forward) != len(backward) || !validPath(g, forward) {
						return false
					}
					if forward[0] != a || forward[len(forward)-1] != b {
						return false
					}
				}
			}
			return true
		},
		genRoutes(),
	))

	properties.Property("diameter bounds every shortest path and is attained", prop.ForAll(
		func(routes []dataset.RawRoute) bool {
			g := connected(routes)
			if g == nil {
				return true
			}
			diameter, path, err := DiameterPath(g)
			if err != nil {
				return false
			}
			if len(path) != diameter+1 || !validPath(g, path) {
				return false
			}
			longest := 0
			for _, a := range g.Nodes() {
				distances, err := AllShortestPaths(g, a)
				if err != nil {
					return false
				}
				for _, d := range distances {
					if d > diameter {
						return false
					}
					if d > longest {
						longest = d
					}
				}
			}
			return longest == diameter
		},
		genRoutes(),
	))

	properties.Property("betweenness lies in [0, 1]", prop.ForAll(
		func(routes []dataset.RawRoute) bool {
			g := connected(routes)
			if g == nil {
				return true
			}
			for _, score := range BetweennessCentrality(g) {
				if score < 0 || score > 1+1e-9 {
					return false
				}
			}
			return true
		},
		genRoutes(),
	))

	properties.Property("degree distribution fractions sum to one", prop.ForAll(
		func(routes []dataset.RawRoute) bool {
			g := routegraph.Build(nil, routes, routegraph.EdgeOnly)
			buckets := DegreeDistribution(g)
			if g.NodeCount() == 0 {
				return buckets == nil
			}
			total, sum := 0, 0.0
			for _, b := range buckets {
				total += b.Count
				sum += b.Fraction
			}
			return total == g.NodeCount() && sum > 1-1e-9 && sum < 1+1e-9
		},
		genRoutes(),
	))

	properties.TestingRun(t)
}
