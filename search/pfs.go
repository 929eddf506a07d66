package search

import (
	"container/heap"

	"github.com/juliuskoskela/gdsl/core"
)

// pqItem is one entry in the PFS frontier: a node plus its push sequence
// number; the admitting edge is recorded in the result tree, not here.
// Priority is read fresh from node.Value() on every
// comparison, which is what makes the classic "lazy decrease-key" pattern
// work: pushing duplicates and discarding stale entries on pop is correct
// even though the engine never stores its own distance map (spec §4.2,
// §9 "Concurrent visitation via per-node flag" — the single-threaded analog
// here is simply: don't maintain state the payload already owns).
type pqItem[K comparable, N any, E any] struct {
	node core.Node[K, N, E]
	seq  int // insertion order, for stable tie-breaking
}

type priorityQueue[K comparable, N any, E any] struct {
	items []pqItem[K, N, E]
	less  Less[N]
}

func (pq *priorityQueue[K, N, E]) Len() int { return len(pq.items) }

func (pq *priorityQueue[K, N, E]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if pq.less(a.node.Value(), b.node.Value()) {
		return true
	}
	if pq.less(b.node.Value(), a.node.Value()) {
		return false
	}
	return a.seq < b.seq
}

func (pq *priorityQueue[K, N, E]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

func (pq *priorityQueue[K, N, E]) Push(x any) {
	pq.items = append(pq.items, x.(pqItem[K, N, E]))
}

func (pq *priorityQueue[K, N, E]) Pop() any {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]
	return item
}

// runPFS explores s.start in order of s.less over node payloads, via a
// min-priority queue keyed by that comparator. On each dequeue the node is
// finalized; Map fires when edges are admitted into the frontier, strictly
// before the target's value is finalized, which is what lets a relaxation
// callback (Dijkstra-style) still see the pre-finalized state (spec §4.2).
func runPFS[K comparable, N any, E any](s *Search[K, N, E]) resultTree[K, N, E] {
	var tree resultTree[K, N, E]

	finalized := map[K]bool{}
	pq := &priorityQueue[K, N, E]{less: s.less}
	seq := 0
	heap.Push(pq, pqItem[K, N, E]{node: s.start, seq: seq})
	seq++

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[K, N, E])
		cur := item.node
		if finalized[cur.Key()] {
			continue
		}
		finalized[cur.Key()] = true
		tree.order = append(tree.order, cur)

		if s.hasTarget && cur.Key() == s.target {
			tree.found = true
			return tree
		}

		for e := range cur.Neighbors() {
			if !s.passes(e) {
				continue
			}
			if finalized[e.Target.Key()] {
				continue
			}
			s.admit(e)
			tree.edges = append(tree.edges, e)
			heap.Push(pq, pqItem[K, N, E]{node: e.Target, seq: seq})
			seq++
		}
	}

	tree.found = !s.hasTarget
	return tree
}
