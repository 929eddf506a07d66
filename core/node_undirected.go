// File: node_undirected.go
// Role: UndirectedNode — the connected-node vertex for undirected graphs.
// Invariants enforced here (spec §4.1, §4.3):
//   - connect(u, v, e) appends the same logical edge to both endpoints'
//     single adjacency list — a symmetric insert/remove atomic pair.
//   - both endpoints always agree on edge presence.

package core

import "iter"

// UndirectedNode is a keyed vertex with a single adjacency list shared
// symmetrically with its neighbors. Construct with NewUndirectedNode.
type UndirectedNode[K comparable, N any, E any] struct {
	key   K
	value N
	cfg   nodeConfig

	adj []Edge[K, N, E]
}

// NewUndirectedNode constructs an isolated undirected node. Never fails.
func NewUndirectedNode[K comparable, N any, E any](key K, value N, opts ...NodeOption) *UndirectedNode[K, N, E] {
	cfg := defaultNodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &UndirectedNode[K, N, E]{key: key, value: value, cfg: cfg}
}

// Key returns this node's identity.
func (n *UndirectedNode[K, N, E]) Key() K { return n.key }

// Value returns the node's payload.
func (n *UndirectedNode[K, N, E]) Value() N { return n.value }

// Connect adds an undirected edge between self and other, appending it
// once to each endpoint's adjacency. A self-loop (other == self) is
// appended only once to avoid double-counting its own degree. Returns
// false without mutating anything under a RejectDuplicate policy if an
// edge to other already exists.
func (n *UndirectedNode[K, N, E]) Connect(other *UndirectedNode[K, N, E], weight E) bool {
	if n.cfg.duplicates == RejectDuplicate && n.IsConnected(other) {
		return false
	}

	fwd := Edge[K, N, E]{Source: n, Target: other, Weight: weight}
	n.adj = append(n.adj, fwd)
	if other != n {
		bwd := Edge[K, N, E]{Source: other, Target: n, Weight: weight}
		other.adj = append(other.adj, bwd)
	}

	return true
}

// Disconnect removes every edge between self and other from both
// endpoints' adjacency. Returns whether anything was removed.
func (n *UndirectedNode[K, N, E]) Disconnect(other *UndirectedNode[K, N, E]) bool {
	before := len(n.adj)
	n.adj = removeEdgesTo(n.adj, other.key)
	if other != n {
		other.adj = removeEdgesTo(other.adj, n.key)
	}

	return len(n.adj) != before
}

// TryDisconnect behaves like Disconnect but, when the node was constructed
// WithStrictDisconnect, returns ErrNoSuchEdge when there was nothing to
// remove instead of a silent false.
func (n *UndirectedNode[K, N, E]) TryDisconnect(other *UndirectedNode[K, N, E]) error {
	removed := n.Disconnect(other)
	if !removed && n.cfg.strictDisconnect {
		return ErrNoSuchEdge
	}

	return nil
}

// IsConnected reports whether an edge between self and other exists.
func (n *UndirectedNode[K, N, E]) IsConnected(other *UndirectedNode[K, N, E]) bool {
	for _, e := range n.adj {
		if e.Target.Key() == other.key {
			return true
		}
	}

	return false
}

// Equal reports whether two nodes share the same key.
func (n *UndirectedNode[K, N, E]) Equal(other *UndirectedNode[K, N, E]) bool {
	return n.key == other.key
}

// Iter yields self's adjacency in insertion order. Lazy and
// non-restartable on a single range; call again to regenerate.
func (n *UndirectedNode[K, N, E]) Iter() iter.Seq[Edge[K, N, E]] {
	return sliceSeq(n.adj)
}

// Neighbors implements NeighborSelector: for an undirected node, direction
// is unimportant for traversal, so Neighbors is simply Iter.
func (n *UndirectedNode[K, N, E]) Neighbors() iter.Seq[Edge[K, N, E]] {
	return n.Iter()
}

// Degree reports the size of self's adjacency (self-loops count once, per
// Connect's loop handling above).
func (n *UndirectedNode[K, N, E]) Degree() int { return len(n.adj) }
