package algorithms

import (
	"errors"
	"testing"
)

// TestShortestPath_SameNode tests path from node to itself
func TestShortestPath_SameNode(t *testing.T) {
	g := buildGraph([2]int64{1, 2})

	path, err := ShortestPath(g, 1, 1)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}

	if len(path) != 1 || path[0] != 1 {
		t.Errorf("Expected path [1], got %v", path)
	}
}

// TestShortestPath_DirectConnection tests a simple A-B path in both directions
func TestShortestPath_DirectConnection(t *testing.T) {
	g := buildGraph([2]int64{1, 2})

	path, err := ShortestPath(g, 2, 1)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}

	if len(path) != 2 || path[0] != 2 || path[1] != 1 {
		t.Errorf("Expected path [2 1], got %v", path)
	}
}

// TestShortestPath_LinearPath tests A-B-C path
func TestShortestPath_LinearPath(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3})

	path, err := ShortestPath(g, 1, 3)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}

	if len(path) != 3 || path[0] != 1 || path[1] != 2 || path[2] != 3 {
		t.Errorf("Expected path [1 2 3], got %v", path)
	}
}

// TestShortestPath_MultiplePaths checks the lexicographically smallest of
// several equally short paths is chosen
func TestShortestPath_MultiplePaths(t *testing.T) {
	// 1 - 3 - 4 and 1 - 2 - 4, inserted with the larger middle node first
	g := buildGraph([2]int64{1, 3}, [2]int64{3, 4}, [2]int64{1, 2}, [2]int64{2, 4})

	path, err := ShortestPath(g, 1, 4)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}

	if len(path) != 3 || path[1] != 2 {
		t.Errorf("Expected path [1 2 4], got %v", path)
	}
}

// TestShortestPath_NoPath tests disconnected nodes
func TestShortestPath_NoPath(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{3, 4})

	_, err := ShortestPath(g, 1, 4)
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("Expected ErrNoPath, got %v", err)
	}
}

// TestShortestPath_MissingNode tests unknown endpoints
func TestShortestPath_MissingNode(t *testing.T) {
	g := buildGraph([2]int64{1, 2})

	if _, err := ShortestPath(g, 1, 42); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound for target, got %v", err)
	}
	if _, err := ShortestPath(g, 42, 1); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound for source, got %v", err)
	}
}

// TestShortestPath_Symmetric tests undirected symmetry of path length
func TestShortestPath_Symmetric(t *testing.T) {
	g := twoCliquesWithBridge()

	forward, err := ShortestPath(g, 2, 8)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}
	backward, err := ShortestPath(g, 8, 2)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}

	if len(forward) != len(backward) {
		t.Errorf("Asymmetric lengths: %v vs %v", forward, backward)
	}
	if len(forward) != 5 {
		t.Errorf("Expected 4 hops (2-1-9-5-8), got %v", forward)
	}
}

// TestAllShortestPaths tests BFS distances from a source
func TestAllShortestPaths(t *testing.T) {
	g := buildGraph([2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{10, 11})

	distances, err := AllShortestPaths(g, 1)
	if err != nil {
		t.Fatalf("AllShortestPaths failed: %v", err)
	}

	expected := map[int64]int{1: 0, 2: 1, 3: 2, 4: 3}
	if len(distances) != len(expected) {
		t.Fatalf("Expected %d reachable nodes, got %v", len(expected), distances)
	}
	for node, want := range expected {
		if distances[node] != want {
			t.Errorf("distance[%d] = %d, want %d", node, distances[node], want)
		}
	}

	if _, err := AllShortestPaths(g, 99); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}

// TestShortestPath_SelfLoopIgnored checks self-loops do not affect paths
func TestShortestPath_SelfLoopIgnored(t *testing.T) {
	g := buildGraph([2]int64{1, 1}, [2]int64{1, 2})

	path, err := ShortestPath(g, 1, 2)
	if err != nil {
		t.Fatalf("ShortestPath failed: %v", err)
	}
	if len(path) != 2 {
		t.Errorf("Expected path [1 2], got %v", path)
	}
}
