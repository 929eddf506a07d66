package search

import "github.com/juliuskoskela/gdsl/core"

// runBFS explores s.start breadth-first. A node is enqueued at most once;
// visit order is non-decreasing in hop count, ties broken by insertion
// order of outgoing edges (spec §4.2).
func runBFS[K comparable, N any, E any](s *Search[K, N, E]) resultTree[K, N, E] {
	var tree resultTree[K, N, E]

	discovered := map[K]bool{s.start.Key(): true}
	queue := []core.Node[K, N, E]{s.start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		tree.order = append(tree.order, cur)

		if s.hasTarget && cur.Key() == s.target {
			tree.found = true
			return tree
		}

		for e := range cur.Neighbors() {
			if !s.passes(e) {
				continue
			}
			if discovered[e.Target.Key()] {
				continue
			}
			discovered[e.Target.Key()] = true
			s.admit(e)
			tree.edges = append(tree.edges, e)
			queue = append(queue, e.Target)
		}
	}

	tree.found = !s.hasTarget
	return tree
}
