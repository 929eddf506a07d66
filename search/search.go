// File: search.go
// Role: terminal operations of the Search builder — Search, SearchNodes,
//       SearchPath — each dispatching to the strategy's run function and
//       projecting the resulting tree (spec §4.2).
package search

import "github.com/juliuskoskela/gdsl/core"

func (s *Search[K, N, E]) run() (resultTree[K, N, E], error) {
	if s.strategy == StrategyPFS && s.less == nil {
		return resultTree[K, N, E]{}, ErrMissingLess
	}

	switch s.strategy {
	case StrategyDFS:
		return runDFS(s), nil
	case StrategyPFS:
		return runPFS(s), nil
	default:
		return runBFS(s), nil
	}
}

// Search executes the traversal and reports whether Target was found. If
// no Target was set, it reports true once the traversal completes (a
// success marker, not a match).
func (s *Search[K, N, E]) Search() (bool, error) {
	tree, err := s.run()
	if err != nil {
		return false, err
	}
	return tree.found, nil
}

// SearchNodes executes the traversal and returns the visited nodes in
// traversal order. The result is duplicate-free and a prefix-closed subset
// of the nodes reachable from the start (spec §8, property 7).
func (s *Search[K, N, E]) SearchNodes() ([]core.Node[K, N, E], error) {
	tree, err := s.run()
	if err != nil {
		return nil, err
	}
	return tree.order, nil
}

// SearchPath executes the traversal and reconstructs the edge path from
// the start to Target by backtracking the result tree. Returns ErrNotFound
// if Target is unreachable. Calling SearchPath without a Target configured
// is a programmer error reported the same way BFS/DFS report an
// unreachable target: there is nothing to reconstruct toward, so it always
// fails with ErrNotFound.
func (s *Search[K, N, E]) SearchPath() ([]core.Edge[K, N, E], error) {
	if !s.hasTarget {
		return nil, ErrNotFound
	}

	tree, err := s.run()
	if err != nil {
		return nil, err
	}
	if !tree.found {
		return nil, ErrNotFound
	}

	return reconstructPath(tree.edges, s.start.Key(), s.target), nil
}
