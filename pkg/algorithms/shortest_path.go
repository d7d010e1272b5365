package algorithms

import (
	"container/list"
	"fmt"
	"sort"
)

// bfsTree is the result of a breadth-first search from one source.
// Neighbors are expanded in ascending order, so the parent pointers describe
// the lexicographically smallest shortest path to every reached node, and
// order lists nodes level by level in that same lexicographic order.
type bfsTree struct {
	source   int64
	distance map[int64]int
	parent   map[int64]int64
	order    []int64
}

// bfs searches from source. If stop is non-nil the search ends as soon as
// *stop is discovered.
func bfs(g Graph, source int64, stop *int64) *bfsTree {
	tree := &bfsTree{
		source:   source,
		distance: map[int64]int{source: 0},
		parent:   map[int64]int64{source: source},
		order:    []int64{source},
	}
	if stop != nil && *stop == source {
		return tree
	}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		currentID, ok := queue.Remove(queue.Front()).(int64)
		if !ok {
			continue
		}
		currentDist := tree.distance[currentID]

		for _, neighborID := range g.Neighbors(currentID) {
			if _, visited := tree.distance[neighborID]; visited {
				continue
			}
			tree.distance[neighborID] = currentDist + 1
			tree.parent[neighborID] = currentID
			tree.order = append(tree.order, neighborID)
			if stop != nil && neighborID == *stop {
				return tree
			}
			queue.PushBack(neighborID)
		}
	}

	return tree
}

// pathTo rebuilds the path from the source to target, or nil if unreached
func (t *bfsTree) pathTo(target int64) []int64 {
	if _, ok := t.distance[target]; !ok {
		return nil
	}

	path := make([]int64, 0, t.distance[target]+1)
	node := target
	for node != t.source {
		path = append(path, node)
		node = t.parent[node]
	}
	path = append(path, t.source)

	// Reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ShortestPath finds an unweighted shortest path between two nodes using BFS.
// Among equally short paths the lexicographically smallest id sequence wins.
func ShortestPath(g Graph, startID, endID int64) ([]int64, error) {
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, startID)
	}
	if !g.HasNode(endID) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, endID)
	}

	path := bfs(g, startID, &endID).pathTo(endID)
	if path == nil {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, startID, endID)
	}
	return path, nil
}

// AllShortestPaths returns the hop distance from source to every reachable node
func AllShortestPaths(g Graph, sourceID int64) (map[int64]int, error) {
	if !g.HasNode(sourceID) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, sourceID)
	}
	return bfs(g, sourceID, nil).distance, nil
}

// sortedNodes returns a copy of the node list in ascending id order
func sortedNodes(g Graph) []int64 {
	nodes := append([]int64(nil), g.Nodes()...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}
