// File: dsl.go
// Role: Directed/Undirected — the declarative literal syntax spec §6 names,
//       expressed as Go composite literals instead of a macro.
package literal

import "github.com/juliuskoskela/gdsl/core"

// EdgeLiteral is one outgoing edge in a NodeLiteral's adjacency list: the
// "(target_key, E)" half of spec §6's literal syntax.
type EdgeLiteral[K comparable, E any] struct {
	Target K
	Weight E
}

// NodeLiteral is one "(K, N) => [...]" (or "(K, N) : [...]") declaration:
// a node's key and value plus its outgoing edges.
type NodeLiteral[K comparable, N any, E any] struct {
	Key   K
	Value N
	Edges []EdgeLiteral[K, E]
}

// Directed realizes a slice of NodeLiteral as directed nodes: every
// declared node is inserted first (so forward references between literals
// resolve regardless of declaration order), then every literal's edges are
// connected. Returns ErrUnknownTarget if an edge names a key with no
// matching NodeLiteral.
func Directed[K comparable, N any, E any](literals []NodeLiteral[K, N, E]) (map[K]*core.DirectedNode[K, N, E], error) {
	nodes := make(map[K]*core.DirectedNode[K, N, E], len(literals))
	for _, lit := range literals {
		nodes[lit.Key] = core.NewDirectedNode[K, N, E](lit.Key, lit.Value)
	}

	for _, lit := range literals {
		u := nodes[lit.Key]
		for _, e := range lit.Edges {
			v, ok := nodes[e.Target]
			if !ok {
				return nil, ErrUnknownTarget
			}
			u.Connect(v, e.Weight)
		}
	}

	return nodes, nil
}

// Undirected realizes a slice of NodeLiteral as undirected nodes, the same
// two-pass way Directed does.
func Undirected[K comparable, N any, E any](literals []NodeLiteral[K, N, E]) (map[K]*core.UndirectedNode[K, N, E], error) {
	nodes := make(map[K]*core.UndirectedNode[K, N, E], len(literals))
	for _, lit := range literals {
		nodes[lit.Key] = core.NewUndirectedNode[K, N, E](lit.Key, lit.Value)
	}

	for _, lit := range literals {
		u := nodes[lit.Key]
		for _, e := range lit.Edges {
			v, ok := nodes[e.Target]
			if !ok {
				return nil, ErrUnknownTarget
			}
			u.Connect(v, e.Weight)
		}
	}

	return nodes, nil
}
