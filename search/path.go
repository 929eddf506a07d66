package search

import "github.com/juliuskoskela/gdsl/core"

// reconstructPath backtracks tree.edges from target to start, walking
// backward from the last edge whose target matches (spec §4.2): repeatedly
// find the most recently admitted edge into the current node, prepend it,
// and continue from its source, until the source equals startKey.
//
// Scanning backward from the end is what makes this correct under PFS's
// lazy relaxation: a target may have been admitted into the frontier more
// than once before being finalized, and the last admission is the one that
// carried the winning (shortest-known) edge.
func reconstructPath[K comparable, N any, E any](edges []core.Edge[K, N, E], startKey, targetKey K) []core.Edge[K, N, E] {
	if startKey == targetKey {
		return nil
	}

	var path []core.Edge[K, N, E]
	cur := targetKey
	for {
		idx := -1
		for i := len(edges) - 1; i >= 0; i-- {
			if edges[i].Target.Key() == cur {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil
		}

		edge := edges[idx]
		path = append(path, edge)
		cur = edge.Source.Key()
		if cur == startKey {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
