package algorithms

import (
	"sort"
)

// brandesBetweenness runs a single O(VE) Brandes pass and returns raw,
// unnormalised node betweenness. Every ordered (source, target) pair is
// counted, so on an undirected graph each unordered pair contributes twice.
// Sources are processed in ascending id order to keep float summation stable.
func brandesBetweenness(g Graph) (map[int64]float64, []int64) {
	nodeIDs := sortedNodes(g)

	betweenness := make(map[int64]float64, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		betweenness[nodeID] = 0.0
	}

	for _, source := range nodeIDs {
		stack := make([]int64, 0, len(nodeIDs))
		predecessors := make(map[int64][]int64, len(nodeIDs))
		sigma := make(map[int64]float64, len(nodeIDs))
		distance := make(map[int64]int, len(nodeIDs))

		sigma[source] = 1.0
		distance[source] = 0

		queue := []int64{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if _, seen := distance[w]; !seen {
					queue = append(queue, w)
					distance[w] = distance[v] + 1
				}

				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of dependencies
		delta := make(map[int64]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	return betweenness, nodeIDs
}

// BetweennessCentrality computes normalised betweenness centrality for all
// nodes: the fraction of shortest paths between other node pairs that pass
// through each node. Scores are scaled by 1/((n-1)(n-2)), which for an
// undirected graph equals the standard normalisation 2/((n-1)(n-2)) applied
// to unordered pairs.
func BetweennessCentrality(g Graph) map[int64]float64 {
	betweenness, nodeIDs := brandesBetweenness(g)

	if n := len(nodeIDs); n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for nodeID := range betweenness {
			betweenness[nodeID] *= normFactor
		}
	}

	return betweenness
}

// DegreeCentrality returns the raw degree of every node
func DegreeCentrality(g Graph) map[int64]int {
	degree := make(map[int64]int, len(g.Nodes()))
	for _, nodeID := range g.Nodes() {
		degree[nodeID] = g.Degree(nodeID)
	}
	return degree
}

// DegreeDistribution returns, for every degree present, how many nodes have it
// and what fraction of all nodes that is. Buckets are sorted by degree.
func DegreeDistribution(g Graph) []DegreeBucket {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, nodeID := range nodes {
		counts[g.Degree(nodeID)]++
	}

	buckets := make([]DegreeBucket, 0, len(counts))
	for degree, count := range counts {
		buckets = append(buckets, DegreeBucket{
			Degree:   degree,
			Count:    count,
			Fraction: float64(count) / float64(len(nodes)),
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Degree < buckets[j].Degree })

	return buckets
}
