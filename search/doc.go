// Package search implements the traversal engine shared by every flavor of
// gdsl: breadth-first, depth-first, and priority-first search expressed as
// lazy, chainable Search objects over a core.Node.
//
// A Search captures a starting node, a strategy, and three optional,
// orthogonal knobs — Target, Filter, Map — then materializes its result
// only when a terminal method runs: Search (found/not found), SearchNodes
// (visited nodes in traversal order), or SearchPath (the reconstructed
// edge path to Target). Composing a Search never fails; only the terminal
// methods can return an error.
//
// PFS additionally needs a Less comparator over the node payload N — the
// engine never interprets N itself, it only orders by whatever the caller
// supplies, which is how the same engine serves Dijkstra-style relaxation
// without knowing what a "distance" is.
package search
