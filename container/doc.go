// Package container provides Container, a keyed registry over core nodes.
//
// Neither core nor search requires a Container: a Node is a complete,
// self-contained vertex on its own, reachable from any other node it is
// connected to without ever being looked up by key. Container exists for
// the common case of needing a name-to-node index anyway — deserializing a
// graph from codec, building one from literal, or just handing callers a
// single object that owns a graph's root set. It is deliberately a thin
// map wrapper: no adjacency bookkeeping of its own, no traversal, nothing
// core and search don't already do better.
package container
