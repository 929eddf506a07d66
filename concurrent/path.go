package concurrent

import "github.com/juliuskoskela/gdsl/core"

// reconstructPath backtracks edges from targetKey to startKey. Each target
// key appears at most once across edges (tryDiscover's CAS admits a node
// exactly once), so a single source-indexed-by-target map is enough —
// unlike search's PFS reconstruction, there is never a later admission to
// prefer over an earlier one.
func reconstructPath[K comparable, N any, E any](edges []core.Edge[K, N, E], startKey, targetKey K) []core.Edge[K, N, E] {
	if startKey == targetKey {
		return nil
	}

	byTarget := make(map[K]core.Edge[K, N, E], len(edges))
	for _, e := range edges {
		byTarget[e.Target.Key()] = e
	}

	var path []core.Edge[K, N, E]
	cur := targetKey
	for {
		e, ok := byTarget[cur]
		if !ok {
			return nil
		}
		path = append(path, e)
		cur = e.Source.Key()
		if cur == startKey {
			break
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
