package search

import "github.com/juliuskoskela/gdsl/core"

// runDFS explores s.start depth-first, preorder by default (a node is
// recorded in tree.order at first discovery, before its descendants) or
// postorder when s.postorder is set (recorded after). Either way each node
// is visited at most once (spec §4.2).
func runDFS[K comparable, N any, E any](s *Search[K, N, E]) resultTree[K, N, E] {
	var tree resultTree[K, N, E]
	discovered := map[K]bool{}

	dfsVisit(s, s.start, discovered, &tree)
	tree.found = tree.found || !s.hasTarget

	return tree
}

func dfsVisit[K comparable, N any, E any](
	s *Search[K, N, E],
	cur core.Node[K, N, E],
	discovered map[K]bool,
	tree *resultTree[K, N, E],
) {
	discovered[cur.Key()] = true

	if !s.postorder {
		tree.order = append(tree.order, cur)
	}

	if s.hasTarget && cur.Key() == s.target {
		tree.found = true
		if s.postorder {
			tree.order = append(tree.order, cur)
		}
		return
	}

	for e := range cur.Neighbors() {
		if tree.found {
			return
		}
		if !s.passes(e) {
			continue
		}
		if discovered[e.Target.Key()] {
			continue
		}
		s.admit(e)
		tree.edges = append(tree.edges, e)
		dfsVisit(s, e.Target, discovered, tree)
		if tree.found {
			return
		}
	}

	if s.postorder {
		tree.order = append(tree.order, cur)
	}
}
