// Package concurrent provides a thread-safe node flavor and a parallel,
// wave-based breadth-first traversal over it.
//
// core.DirectedNode and core.UndirectedNode are deliberately unsynchronized
// — a single-threaded caller pays no locking cost. concurrent.Node trades
// that for safety: adjacency is guarded by a sync.RWMutex (write-locked only
// in Connect/Disconnect, matching the reader-only-during-traversal
// discipline the single-threaded flavor already follows by construction),
// and visitation uses a per-node atomic.Bool "closed" flag instead of a
// shared map guarded by a single mutex. A CAS on a per-node flag scales with
// the number of workers; a shared map guarded by one mutex serializes them
// at exactly the point parallelism was supposed to help.
//
// ParallelBFS processes the graph in waves: every node in the current
// frontier is expanded concurrently (bounded by a worker limit), and the
// next frontier is the union of newly discovered nodes. Waves themselves run
// strictly in sequence — a node at hop distance d+1 is never visited before
// every node at hop distance d has finished expanding — matching the
// non-decreasing-distance invariant the single-threaded BFS also upholds.
//
// Go's sync.Mutex does not poison itself on a panicking holder the way
// Rust's does; a panic inside a locked section here would simply unlock and
// keep going, silently losing whatever invariant the panic broke. This
// package recovers panics at the worker boundary instead and records a
// poison flag on the node that panicked, surfaced as ErrPoisoned the next
// time a traversal reaches it — an explicit, checkable substitute for what
// Rust gets from the runtime.
package concurrent
