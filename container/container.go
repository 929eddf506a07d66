// File: container.go
// Role: Container — a keyed registry over core.Node, generalizing the
//       teacher's Vertices()/VerticesMap() pair (adjacency_list.go,
//       methods_vertices.go) to an arbitrary comparable key and an
//       arbitrary node flavor, with insertion order instead of sorted
//       order (K need not be Ordered, only comparable).
package container

import "github.com/juliuskoskela/gdsl/core"

// Container indexes nodes of a single graph by key. It owns no adjacency
// of its own — connecting or disconnecting nodes is still done directly on
// the nodes via core's API; Container only ever answers "what node has this
// key" and "what keys exist."
type Container[K comparable, N any, E any] struct {
	nodes map[K]core.Node[K, N, E]
	order []K
}

// New returns an empty Container.
func New[K comparable, N any, E any]() *Container[K, N, E] {
	return &Container[K, N, E]{nodes: make(map[K]core.Node[K, N, E])}
}

// Insert registers n under n.Key(). Returns ErrDuplicateKey without
// mutating the Container if that key is already registered.
func (c *Container[K, N, E]) Insert(n core.Node[K, N, E]) error {
	if _, exists := c.nodes[n.Key()]; exists {
		return ErrDuplicateKey
	}
	c.nodes[n.Key()] = n
	c.order = append(c.order, n.Key())

	return nil
}

// Remove unregisters the node at key, if any. The node itself and its
// adjacency are untouched — Remove only forgets the lookup entry.
func (c *Container[K, N, E]) Remove(key K) error {
	if _, exists := c.nodes[key]; !exists {
		return ErrNotFound
	}
	delete(c.nodes, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return nil
}

// Get returns the node registered under key.
func (c *Container[K, N, E]) Get(key K) (core.Node[K, N, E], error) {
	n, exists := c.nodes[key]
	if !exists {
		return nil, ErrNotFound
	}

	return n, nil
}

// Contains reports whether key is registered.
func (c *Container[K, N, E]) Contains(key K) bool {
	_, exists := c.nodes[key]
	return exists
}

// Len reports how many nodes are registered.
func (c *Container[K, N, E]) Len() int { return len(c.order) }

// Keys returns every registered key in insertion order.
func (c *Container[K, N, E]) Keys() []K {
	out := make([]K, len(c.order))
	copy(out, c.order)

	return out
}

// Nodes returns every registered node in insertion order.
func (c *Container[K, N, E]) Nodes() []core.Node[K, N, E] {
	out := make([]core.Node[K, N, E], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.nodes[k])
	}

	return out
}
