// File: node.go
// Role: Node — the thread-safe connected-node vertex this package adds on
//       top of core's single-threaded flavors.
package concurrent

import (
	"iter"
	"sync"
	"sync/atomic"

	"github.com/juliuskoskela/gdsl/core"
)

// Node is a keyed vertex whose adjacency is guarded by a reader/writer lock
// and whose traversal-visitation state is a per-node atomic flag rather than
// a caller-supplied shared set. It satisfies core.Node, so search's engine
// and codec's encoders work over it unchanged; only ParallelBFS in this
// package understands the extra locking and flag.
type Node[K comparable, N any, E any] struct {
	key   K
	value N

	mu  sync.RWMutex
	adj []core.Edge[K, N, E]

	discovered atomic.Bool
	poisoned   atomic.Bool
}

// NewNode constructs an isolated concurrent node. Never fails.
func NewNode[K comparable, N any, E any](key K, value N) *Node[K, N, E] {
	return &Node[K, N, E]{key: key, value: value}
}

// Key returns this node's identity.
func (n *Node[K, N, E]) Key() K { return n.key }

// Value returns the node's payload.
func (n *Node[K, N, E]) Value() N { return n.value }

// Connect adds a directed edge self -> other with the given weight under a
// write lock. Unlike core.DirectedNode, Connect here only ever touches
// self's adjacency — there is no paired inbound list to keep consistent,
// since ParallelBFS only ever walks outbound edges.
func (n *Node[K, N, E]) Connect(other *Node[K, N, E], weight E) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.adj = append(n.adj, core.Edge[K, N, E]{Source: n, Target: other, Weight: weight})
}

// Disconnect removes every edge self -> other under a write lock. Reports
// whether anything was removed.
func (n *Node[K, N, E]) Disconnect(other *Node[K, N, E]) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	before := len(n.adj)
	kept := n.adj[:0]
	for _, e := range n.adj {
		if e.Target.Key() != other.key {
			kept = append(kept, e)
		}
	}
	n.adj = kept

	return len(n.adj) != before
}

// Neighbors snapshots the adjacency list under a read lock and returns a
// lazy sequence over the copy, so a caller ranging over it never holds the
// node's lock — concurrent workers expanding sibling nodes are never
// blocked behind one slow consumer (spec's reader-only-during-traversal
// discipline, generalized to actual readers-writers exclusion).
func (n *Node[K, N, E]) Neighbors() iter.Seq[core.Edge[K, N, E]] {
	n.mu.RLock()
	snap := make([]core.Edge[K, N, E], len(n.adj))
	copy(snap, n.adj)
	n.mu.RUnlock()

	return func(yield func(core.Edge[K, N, E]) bool) {
		for _, e := range snap {
			if !yield(e) {
				return
			}
		}
	}
}

// tryDiscover atomically flips the closed flag from false to true, reporting
// whether this call is the one that closed it. Concurrent callers racing on
// the same node never both see success.
func (n *Node[K, N, E]) tryDiscover() bool {
	return n.discovered.CompareAndSwap(false, true)
}

// resetDiscovered clears the flag so the node can be visited by a later,
// independent traversal. ParallelBFS calls this only for nodes it actually
// touched, never for the whole graph.
func (n *Node[K, N, E]) resetDiscovered() {
	n.discovered.Store(false)
}

// Poisoned reports whether a previous concurrent visit to this node
// panicked mid-expansion.
func (n *Node[K, N, E]) Poisoned() bool {
	return n.poisoned.Load()
}
