package algorithms

import (
	"container/heap"
	"sort"
)

// TieBreak reports whether a should rank ahead of b when their scores are equal
type TieBreak func(a, b int64) bool

// ByID ranks smaller ids first
func ByID(a, b int64) bool {
	return a < b
}

// rankedNodeHeap is a min-heap whose root is the node ranked lowest so far.
type rankedNodeHeap struct {
	items []RankedNode
	ahead TieBreak
}

// outranks reports whether x ranks strictly ahead of y
func (h *rankedNodeHeap) outranks(x, y RankedNode) bool {
	if x.Score != y.Score {
		return x.Score > y.Score
	}
	return h.ahead(x.NodeID, y.NodeID)
}

func (h *rankedNodeHeap) Len() int           { return len(h.items) }
func (h *rankedNodeHeap) Less(i, j int) bool { return h.outranks(h.items[j], h.items[i]) }
func (h *rankedNodeHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *rankedNodeHeap) Push(x any) {
	h.items = append(h.items, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[0 : n-1]
	return x
}

// TopNodes returns the n highest-scoring nodes, highest first, using a
// bounded min-heap. Equal scores are ordered by ahead. O(V log n).
func TopNodes(scores map[int64]float64, n int, ahead TieBreak) []RankedNode {
	if n <= 0 || len(scores) == 0 {
		return nil
	}
	if ahead == nil {
		ahead = ByID
	}

	h := &rankedNodeHeap{items: make([]RankedNode, 0, n), ahead: ahead}
	heap.Init(h)

	for nodeID, score := range scores {
		rn := RankedNode{NodeID: nodeID, Score: score}
		if h.Len() < n {
			heap.Push(h, rn)
		} else if h.outranks(rn, h.items[0]) {
			heap.Pop(h)
			heap.Push(h, rn)
		}
	}

	result := append([]RankedNode(nil), h.items...)
	sort.Slice(result, func(i, j int) bool { return h.outranks(result[i], result[j]) })

	return result
}
