// File: node_directed.go
// Role: DirectedNode — the connected-node vertex for directed graphs.
// Invariants enforced here (spec §4.1):
//   - connect(u, v, e) appends to u.outbound and v.inbound.
//   - disconnect(u, v) removes the edge(s) from both lists; no re-indexing.
//   - equality is by Key() alone.

package core

import "iter"

// DirectedNode is a keyed vertex whose adjacency is split into outbound and
// inbound edge lists. Construct with NewDirectedNode; connect nodes with
// Connect; the node dereferences to its payload via Value.
type DirectedNode[K comparable, N any, E any] struct {
	key   K
	value N
	cfg   nodeConfig

	outbound []Edge[K, N, E]
	inbound  []Edge[K, N, E]
}

// NewDirectedNode constructs an isolated directed node. Never fails.
func NewDirectedNode[K comparable, N any, E any](key K, value N, opts ...NodeOption) *DirectedNode[K, N, E] {
	cfg := defaultNodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DirectedNode[K, N, E]{key: key, value: value, cfg: cfg}
}

// Key returns this node's identity.
func (n *DirectedNode[K, N, E]) Key() K { return n.key }

// Value returns the node's payload. If N carries interior mutability (a
// pointer or a type with its own locking), callers may update per-node
// state through the returned value without re-inserting the node.
func (n *DirectedNode[K, N, E]) Value() N { return n.value }

// Connect adds a directed edge self -> other with the given weight,
// appending to self.outbound and other.inbound. Returns false without
// mutating anything if a RejectDuplicate policy is configured and an edge
// to other already exists.
func (n *DirectedNode[K, N, E]) Connect(other *DirectedNode[K, N, E], weight E) bool {
	if n.cfg.duplicates == RejectDuplicate && n.isConnectedLocal(other.key) {
		return false
	}

	edge := Edge[K, N, E]{Source: n, Target: other, Weight: weight}
	n.outbound = append(n.outbound, edge)
	other.inbound = append(other.inbound, edge)

	return true
}

// Disconnect removes every edge self -> other from self.outbound and
// other.inbound. Returns whether anything was removed. Other directions
// (other -> self) are untouched.
func (n *DirectedNode[K, N, E]) Disconnect(other *DirectedNode[K, N, E]) bool {
	before := len(n.outbound)
	n.outbound = removeEdgesTo(n.outbound, other.key)
	other.inbound = removeEdgesFrom(other.inbound, n.key)

	return len(n.outbound) != before
}

// TryDisconnect behaves like Disconnect but, when the node was constructed
// WithStrictDisconnect, returns ErrNoSuchEdge instead of a silent false
// when there was nothing to remove (spec §7's InvalidOperation kind).
func (n *DirectedNode[K, N, E]) TryDisconnect(other *DirectedNode[K, N, E]) error {
	removed := n.Disconnect(other)
	if !removed && n.cfg.strictDisconnect {
		return ErrNoSuchEdge
	}

	return nil
}

// IsConnected reports whether an outbound edge self -> other exists.
func (n *DirectedNode[K, N, E]) IsConnected(other *DirectedNode[K, N, E]) bool {
	return n.isConnectedLocal(other.key)
}

func (n *DirectedNode[K, N, E]) isConnectedLocal(key K) bool {
	for _, e := range n.outbound {
		if e.Target.Key() == key {
			return true
		}
	}

	return false
}

// Equal reports whether two nodes share the same key (spec §4.1 equality).
func (n *DirectedNode[K, N, E]) Equal(other *DirectedNode[K, N, E]) bool {
	return n.key == other.key
}

// IterOut yields self's outbound edges in insertion order. Lazy and
// non-restartable on a single range; call again to regenerate.
func (n *DirectedNode[K, N, E]) IterOut() iter.Seq[Edge[K, N, E]] {
	return sliceSeq(n.outbound)
}

// IterIn yields self's inbound edges in insertion order.
func (n *DirectedNode[K, N, E]) IterIn() iter.Seq[Edge[K, N, E]] {
	return sliceSeq(n.inbound)
}

// Neighbors implements NeighborSelector using outbound adjacency — the
// default orientation a directed node exposes to the traversal engine.
func (n *DirectedNode[K, N, E]) Neighbors() iter.Seq[Edge[K, N, E]] {
	return n.IterOut()
}

// Transpose returns a NeighborSelector over self's inbound adjacency,
// presented with the same (u, v, e) orientation search expects: u is self,
// v is whichever node holds an edge into self. This lets the unified
// traversal engine walk a directed graph "backwards" without it knowing
// anything about direction (spec §4.3).
func (n *DirectedNode[K, N, E]) Transpose() NeighborSelector[K, N, E] {
	return transposeView[K, N, E]{n: n}
}

// OutDegree and InDegree report adjacency sizes without materializing an
// edge sequence.
func (n *DirectedNode[K, N, E]) OutDegree() int { return len(n.outbound) }
func (n *DirectedNode[K, N, E]) InDegree() int  { return len(n.inbound) }

// transposeView adapts a DirectedNode's inbound adjacency into a
// NeighborSelector oriented as if traversal were walking outbound edges.
type transposeView[K comparable, N any, E any] struct {
	n *DirectedNode[K, N, E]
}

func (t transposeView[K, N, E]) Neighbors() iter.Seq[Edge[K, N, E]] {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range t.n.inbound {
			flipped := Edge[K, N, E]{Source: t.n, Target: e.Source, Weight: e.Weight}
			if !yield(flipped) {
				return
			}
		}
	}
}

// removeEdgesTo filters out every edge in edges whose Target key equals
// key, preserving the relative order of the survivors (spec §3 invariant
// 4: disconnecting preserves all other references, no re-indexing). Used
// on outbound lists, where every edge's Target is the far endpoint.
func removeEdgesTo[K comparable, N any, E any](edges []Edge[K, N, E], key K) []Edge[K, N, E] {
	out := edges[:0]
	for _, e := range edges {
		if e.Target.Key() != key {
			out = append(out, e)
		}
	}

	return out
}

// removeEdgesFrom filters out every edge in edges whose Source key equals
// key. Used on inbound lists, where every edge's Source is the far
// endpoint and Target is the node owning the list.
func removeEdgesFrom[K comparable, N any, E any](edges []Edge[K, N, E], key K) []Edge[K, N, E] {
	out := edges[:0]
	for _, e := range edges {
		if e.Source.Key() != key {
			out = append(out, e)
		}
	}

	return out
}

// sliceSeq adapts a snapshot slice into a lazy, regenerable iter.Seq.
func sliceSeq[K comparable, N any, E any](edges []Edge[K, N, E]) iter.Seq[Edge[K, N, E]] {
	return func(yield func(Edge[K, N, E]) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}
