// File: types.go
// Role: shared Edge shape, the Endpoint/NeighborSelector capabilities that let
//       search stay oblivious to orientation, and the NodeOption machinery
//       both DirectedNode and UndirectedNode resolve the same way.
// Determinism:
//   - Adjacency order is insertion order; nothing here reorders it.
// AI-HINT (file):
//   - Endpoint is satisfied by *DirectedNode and *UndirectedNode; Edge never
//     names a concrete node type so the two flavors can share Edge, search,
//     and codec unchanged.
//   - DuplicatePolicy/disconnect strictness live in nodeConfig, resolved once
//     at construction time via NodeOption — nothing is re-validated per call.

package core

import "iter"

// Endpoint is anything an Edge can point at: a keyed, valued graph vertex.
// *DirectedNode[K, N, E] and *UndirectedNode[K, N, E] both satisfy it.
type Endpoint[K comparable, N any] interface {
	Key() K
	Value() N
}

// NeighborSelector is the single capability the traversal engine depends
// on: "give me the outgoing (u, v, e) edges of this node." DirectedNode
// exposes its outbound adjacency by default (Transpose for inbound);
// UndirectedNode exposes its single adjacency. The engine is generic over
// this interface and never branches on orientation (spec §4.3).
type NeighborSelector[K comparable, N any, E any] interface {
	// Neighbors yields this node's outgoing edges in insertion order. The
	// returned sequence is lazy and non-restartable on a single range —
	// call Neighbors again to regenerate it.
	Neighbors() iter.Seq[Edge[K, N, E]]
}

// Node is a full connected-node vertex: keyed, valued, and able to select
// its own outgoing neighbors. Edge endpoints are typed as Node (not the
// narrower Endpoint) so that once the traversal engine reaches a node via
// an edge, it can keep walking without a type assertion back to a concrete
// *DirectedNode or *UndirectedNode.
type Node[K comparable, N any, E any] interface {
	Endpoint[K, N]
	NeighborSelector[K, N, E]
}

// Edge is the ordered triple (source, target, weight) described in spec §3.
// Source and Target are strong references back to nodes; Weight (E) is
// opaque to core and to the traversal engine. PFS orders its frontier by
// node payload alone, so a weight only matters to caller-supplied Filter
// and Map callbacks.
type Edge[K comparable, N any, E any] struct {
	Source Node[K, N, E]
	Target Node[K, N, E]
	Weight E
}

// DuplicatePolicy governs what Connect does when an edge to the requested
// target already exists.
type DuplicatePolicy int

const (
	// AllowParallel permits any number of edges between the same pair of
	// nodes. This is the default (spec §4.1: "default policy is to permit
	// parallel edges").
	AllowParallel DuplicatePolicy = iota

	// RejectDuplicate makes Connect a no-op (returning false) when an edge
	// to the same target already exists.
	RejectDuplicate
)

// nodeConfig is resolved once from NodeOption values at construction time.
type nodeConfig struct {
	duplicates       DuplicatePolicy
	strictDisconnect bool
}

func defaultNodeConfig() nodeConfig {
	return nodeConfig{duplicates: AllowParallel, strictDisconnect: false}
}

// NodeOption configures a node at construction time via functional options,
// matching the Graph/Edge option idiom the rest of this module uses.
type NodeOption func(*nodeConfig)

// WithDuplicatePolicy sets how Connect treats a second edge to a target
// that is already adjacent. Default: AllowParallel.
func WithDuplicatePolicy(p DuplicatePolicy) NodeOption {
	return func(c *nodeConfig) { c.duplicates = p }
}

// WithStrictDisconnect enables the InvalidOperation error path on
// TryDisconnect: disconnecting a pair with no edge between them returns
// ErrNoSuchEdge instead of silently reporting false. Disconnect itself is
// unaffected — it always returns a bool, per spec §6's external interface.
func WithStrictDisconnect() NodeOption {
	return func(c *nodeConfig) { c.strictDisconnect = true }
}
