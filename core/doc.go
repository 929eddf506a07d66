// Package core defines the central Node and Edge types shared by every
// flavor of gdsl: a vertex is a self-contained, keyed object that owns its
// own adjacency and exposes the full connect/disconnect/iterate API, so a
// "graph" never needs to be mediated by any container.
//
// Two concrete flavors share the same Edge shape and the same
// neighbor-selection capability (see NeighborSelector):
//
//	DirectedNode[K, N, E]   — separate outbound / inbound adjacency lists.
//	UndirectedNode[K, N, E] — a single adjacency list, symmetric by construction.
//
// Both are generic over:
//
//	K — a comparable key that establishes node identity.
//	N — an opaque per-node payload; the core never inspects it.
//	E — an opaque per-edge payload (weight); the traversal engine never
//	    reads it. search.PFS orders by N alone via a caller-supplied
//	    comparator; weights reach callers through Filter and Map.
//
// Ownership. Go's garbage collector is a tracing collector, not a
// reference-counting one, so a *Node held by two adjacency lists at once
// (the natural u-holds-edge-holds-v cycle) is never a leak risk the way it
// would be under Rc/Arc. Disconnect still removes a node from every
// adjacency list that mentions it — that discipline exists to satisfy the
// stability and no-dangling-edge invariants, not to break a reference
// cycle. See DESIGN.md for the full writeup of this decision.
//
// Concurrency. core's nodes are meant for single-owner use: adjacency is
// mutated through ordinary slice operations with no internal locking. The
// concurrent package provides a parallel-safe variant with the same
// operation names built on *sync.RWMutex and atomic visitation flags.
package core
