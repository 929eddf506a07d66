package core

import "errors"

// Sentinel errors returned by core operations. None of these are ever
// panicked on graph-shape input (disconnected nodes, self-loops, duplicate
// edges, empty adjacency) — see spec §7.
var (
	// ErrDuplicateEdge names the rejection of an edge under the
	// RejectDuplicate policy. Connect reports that rejection by returning
	// false; no function in this package returns ErrDuplicateEdge.
	ErrDuplicateEdge = errors.New("core: duplicate edge rejected by policy")

	// ErrNoSuchEdge is returned by Disconnect in strict mode when no edge
	// between the two nodes exists. The default (non-strict) mode instead
	// returns false from Disconnect.
	ErrNoSuchEdge = errors.New("core: no such edge")
)
