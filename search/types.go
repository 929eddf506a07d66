package search

import "github.com/juliuskoskela/gdsl/core"

// Strategy selects which frontier discipline a Search uses.
type Strategy int

const (
	// StrategyBFS explores by hop count: non-decreasing distance from the
	// start, ties broken in insertion order of outgoing edges.
	StrategyBFS Strategy = iota
	// StrategyDFS explores depth-first, descending each outgoing edge in
	// insertion order before advancing to the next sibling.
	StrategyDFS
	// StrategyPFS explores by a caller-supplied ordering over node
	// payloads, via a min-priority queue.
	StrategyPFS
)

// FilterFunc decides whether an edge is eligible for admission. Edges for
// which it returns false are skipped entirely — never admitted, never
// passed to Map.
type FilterFunc[K comparable, N any, E any] func(e core.Edge[K, N, E]) bool

// MapFunc is invoked at edge admission time, before the target is
// finalized. This is how callers perform relaxation: mutate interior state
// reachable from e.Target.Value() based on e.Source.Value() and e.Weight.
type MapFunc[K comparable, N any, E any] func(e core.Edge[K, N, E])

// Less orders two node payloads for PFS: Less(a, b) reports whether a
// should be dequeued before b. The engine never interprets N itself.
type Less[N any] func(a, b N) bool

// Search is an immutable, fluent builder around a starting node. Composing
// a Search (Target/Filter/Map/Postorder) never fails; only a terminal
// method (Search, SearchNodes, SearchPath) can return an error.
type Search[K comparable, N any, E any] struct {
	start     core.Node[K, N, E]
	strategy  Strategy
	target    K
	hasTarget bool
	filter    FilterFunc[K, N, E]
	mapFn     MapFunc[K, N, E]
	less      Less[N]
	postorder bool
}

// BFS begins a breadth-first Search rooted at start.
func BFS[K comparable, N any, E any](start core.Node[K, N, E]) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: StrategyBFS}
}

// DFS begins a depth-first (preorder by default) Search rooted at start.
func DFS[K comparable, N any, E any](start core.Node[K, N, E]) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: StrategyDFS}
}

// PFS begins a priority-first Search rooted at start, ordering its frontier
// with less. less is required at SearchPath/Search/SearchNodes time; a PFS
// composed without one fails with ErrMissingLess only when executed.
func PFS[K comparable, N any, E any](start core.Node[K, N, E], less Less[N]) *Search[K, N, E] {
	return &Search[K, N, E]{start: start, strategy: StrategyPFS, less: less}
}

// clone returns a shallow copy so that every fluent setter leaves the
// receiver untouched (spec §4.2: the builder is immutable).
func (s *Search[K, N, E]) clone() *Search[K, N, E] {
	c := *s
	return &c
}

// Target stops the traversal on first match of key and enables SearchPath.
func (s *Search[K, N, E]) Target(key K) *Search[K, N, E] {
	c := s.clone()
	c.target = key
	c.hasTarget = true
	return c
}

// Filter restricts which edges the traversal may admit.
func (s *Search[K, N, E]) Filter(fn FilterFunc[K, N, E]) *Search[K, N, E] {
	c := s.clone()
	c.filter = fn
	return c
}

// Map registers a side-effecting callback fired at edge admission time.
func (s *Search[K, N, E]) Map(fn MapFunc[K, N, E]) *Search[K, N, E] {
	c := s.clone()
	c.mapFn = fn
	return c
}

// Postorder switches a DFS Search to emit nodes after their descendants
// instead of on first discovery. No-op for BFS/PFS.
func (s *Search[K, N, E]) Postorder() *Search[K, N, E] {
	c := s.clone()
	c.postorder = true
	return c
}

func (s *Search[K, N, E]) passes(e core.Edge[K, N, E]) bool {
	return s.filter == nil || s.filter(e)
}

func (s *Search[K, N, E]) admit(e core.Edge[K, N, E]) {
	if s.mapFn != nil {
		s.mapFn(e)
	}
}

// resultTree is the ordered list of admitted edges a run produces, used to
// reconstruct paths (spec §4.2).
type resultTree[K comparable, N any, E any] struct {
	edges []core.Edge[K, N, E]
	order []core.Node[K, N, E]
	found bool
}
