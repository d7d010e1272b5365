package algorithms

// Eccentricity computes, for every node, the largest shortest-path distance to
// any other node. The graph must be connected.
func Eccentricity(g Graph) (map[int64]int, error) {
	nodes := sortedNodes(g)
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	ecc := make(map[int64]int, len(nodes))
	for _, source := range nodes {
		tree := bfs(g, source, nil)
		if len(tree.distance) != len(nodes) {
			return nil, ErrDisconnected
		}
		// order is level by level, so the last node is the farthest
		ecc[source] = tree.distance[tree.order[len(tree.order)-1]]
	}
	return ecc, nil
}

// Diameter returns the maximum eccentricity of a connected graph
func Diameter(g Graph) (int, error) {
	diameter, _, err := DiameterPath(g)
	return diameter, err
}

// LongestShortestPath returns a shortest path whose length equals the diameter
func LongestShortestPath(g Graph) ([]int64, error) {
	_, path, err := DiameterPath(g)
	return path, err
}

// DiameterPath computes the diameter together with one longest shortest path.
//
// The path starts at the smallest node id whose eccentricity equals the
// diameter and ends at the first node BFS discovers at that distance, which
// makes it the lexicographically smallest of all longest shortest paths.
func DiameterPath(g Graph) (int, []int64, error) {
	ecc, err := Eccentricity(g)
	if err != nil {
		return 0, nil, err
	}

	diameter := 0
	for _, e := range ecc {
		if e > diameter {
			diameter = e
		}
	}

	var source int64
	for _, id := range sortedNodes(g) {
		if ecc[id] == diameter {
			source = id
			break
		}
	}

	tree := bfs(g, source, nil)
	for _, id := range tree.order {
		if tree.distance[id] == diameter {
			return diameter, tree.pathTo(id), nil
		}
	}

	// unreachable: the source has eccentricity == diameter
	return diameter, []int64{source}, nil
}
