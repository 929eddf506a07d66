// Package gdsl is a node-centric graph data-structure library: a vertex is
// a self-contained, keyed object that owns its own adjacency, so building,
// connecting, and traversing a graph never needs a central Graph object to
// mediate it.
//
// Everything is organized under a handful of subpackages:
//
//	core/       — DirectedNode/UndirectedNode, Edge, and the capability
//	              interfaces (Endpoint, NeighborSelector) traversal depends on.
//	search/     — the unified BFS/DFS/PFS traversal engine, expressed as an
//	              immutable, fluent Search builder.
//	concurrent/ — a parallel-safe node variant (RWMutex adjacency, atomic
//	              visitation flags) plus a wave-based parallel BFS.
//	container/  — a minimal keyed node registry.
//	literal/    — a declarative node/edge literal syntax and canonical
//	              topology constructors (complete, cycle, wheel, grid, ...).
//	codec/      — JSON/YAML round-tripping of an ordered node/edge list.
//
// See DESIGN.md for the rationale behind each package's shape and its
// third-party dependencies.
package gdsl
