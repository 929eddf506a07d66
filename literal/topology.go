// File: topology.go
// Role: canonical-topology constructors, generalizing the teacher's
//       impl_complete.go/impl_cycle.go/impl_star.go/impl_wheel.go/
//       impl_path.go/impl_grid.go/impl_bipartite.go/impl_random_sparse.go/
//       impl_random_regular.go from *core.Graph mutation to an index-pair
//       list realized via BuildUndirected/BuildDirected.
package literal

import (
	"math/rand"

	"github.com/juliuskoskela/gdsl/core"
)

// Pair is a 0-based (i, j) vertex-index edge, the common currency every
// topology generator below produces before realization.
type Pair struct{ I, J int }

// BuildUndirected realizes n vertices (values from valueFn) and the given
// index pairs as undirected edges, using cfg's IDFunc and WeightFunc.
func BuildUndirected[K comparable, N any, E any](n int, valueFn func(int) N, pairs []Pair, opts ...Option[K, E]) (map[K]*core.UndirectedNode[K, N, E], []K, error) {
	if n < 1 {
		return nil, nil, ErrTooFewNodes
	}
	cfg := newConfig(opts...)
	if cfg.idFn == nil {
		return nil, nil, ErrMissingIDFunc
	}

	nodes := make(map[K]*core.UndirectedNode[K, N, E], n)
	keys := make([]K, n)
	for i := 0; i < n; i++ {
		keys[i] = cfg.idFn(i)
		nodes[keys[i]] = core.NewUndirectedNode[K, N, E](keys[i], valueFn(i))
	}
	for _, p := range pairs {
		w := cfg.weightFn(p.I, p.J, cfg.rng)
		nodes[keys[p.I]].Connect(nodes[keys[p.J]], w)
	}

	return nodes, keys, nil
}

// BuildDirected is BuildUndirected's directed counterpart: every pair is
// connected in both directions, mirroring the teacher's g.Directed()
// symmetry mirroring in impl_complete.go and friends.
func BuildDirected[K comparable, N any, E any](n int, valueFn func(int) N, pairs []Pair, opts ...Option[K, E]) (map[K]*core.DirectedNode[K, N, E], []K, error) {
	if n < 1 {
		return nil, nil, ErrTooFewNodes
	}
	cfg := newConfig(opts...)
	if cfg.idFn == nil {
		return nil, nil, ErrMissingIDFunc
	}

	nodes := make(map[K]*core.DirectedNode[K, N, E], n)
	keys := make([]K, n)
	for i := 0; i < n; i++ {
		keys[i] = cfg.idFn(i)
		nodes[keys[i]] = core.NewDirectedNode[K, N, E](keys[i], valueFn(i))
	}
	for _, p := range pairs {
		w := cfg.weightFn(p.I, p.J, cfg.rng)
		nodes[keys[p.I]].Connect(nodes[keys[p.J]], w)
		nodes[keys[p.J]].Connect(nodes[keys[p.I]], cfg.weightFn(p.J, p.I, cfg.rng))
	}

	return nodes, keys, nil
}

// CompletePairs returns every {i,j}, i<j for n vertices: the complete
// graph K_n (spec-adjacent teacher topology impl_complete.go).
func CompletePairs(n int) []Pair {
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{i, j})
		}
	}

	return pairs
}

// CyclePairs returns the ring i -> (i+1)%n for n >= 3 (impl_cycle.go).
func CyclePairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{i, (i + 1) % n}
	}

	return pairs
}

// StarPairs returns center (index 0) connected to every leaf 1..n-1
// (impl_star.go).
func StarPairs(n int) []Pair {
	pairs := make([]Pair, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, Pair{0, i})
	}

	return pairs
}

// WheelPairs returns a StarPairs hub (index 0) plus a CyclePairs rim over
// indices 1..n-1 (impl_wheel.go).
func WheelPairs(n int) []Pair {
	pairs := StarPairs(n)
	for _, p := range CyclePairs(n - 1) {
		pairs = append(pairs, Pair{p.I + 1, p.J + 1})
	}

	return pairs
}

// PathPairs returns the simple path 0-1-...-(n-1) (impl_path.go).
func PathPairs(n int) []Pair {
	pairs := make([]Pair, 0, n-1)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, Pair{i, i + 1})
	}

	return pairs
}

// GridPairs returns a rows*cols 4-neighborhood grid's right/down edges,
// with vertex index r*cols+c for cell (r, c) (impl_grid.go). The returned
// vertex count is rows*cols.
func GridPairs(rows, cols int) []Pair {
	idx := func(r, c int) int { return r*cols + c }
	var pairs []Pair
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				pairs = append(pairs, Pair{idx(r, c), idx(r, c+1)})
			}
			if r+1 < rows {
				pairs = append(pairs, Pair{idx(r, c), idx(r+1, c)})
			}
		}
	}

	return pairs
}

// BipartitePairs returns every cross pair between a left part of size n1
// (indices 0..n1-1) and a right part of size n2 (indices n1..n1+n2-1),
// realizing K_{n1,n2} (impl_bipartite.go). The returned vertex count is
// n1+n2.
func BipartitePairs(n1, n2 int) []Pair {
	pairs := make([]Pair, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := n1; j < n1+n2; j++ {
			pairs = append(pairs, Pair{i, j})
		}
	}

	return pairs
}

// RandomSparsePairs returns an Erdos-Renyi-style random graph: each of the
// n*(n-1)/2 unordered pairs is included independently with probability p
// (impl_random_sparse.go). rng must be non-nil; an rng built from a fixed
// seed gives a deterministic result.
func RandomSparsePairs(n int, p float64, rng *rand.Rand) []Pair {
	var pairs []Pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}

	return pairs
}

// RandomRegularPairs builds a simple d-regular graph on n vertices via
// stub matching with bounded retries (impl_random_regular.go): n*d must be
// even, and a handful of shuffle-and-match attempts are made before giving
// up with ErrRandomRegularUnsatisfiable.
func RandomRegularPairs(n, d int, rng *rand.Rand) ([]Pair, error) {
	const maxAttempts = 100
	if n*d%2 != 0 {
		return nil, ErrRandomRegularUnsatisfiable
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		stubs := make([]int, 0, n*d)
		for v := 0; v < n; v++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, v)
			}
		}
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[Pair]bool)
		pairs := make([]Pair, 0, len(stubs)/2)
		ok := true
		for k := 0; k+1 < len(stubs); k += 2 {
			u, v := stubs[k], stubs[k+1]
			if u == v {
				ok = false
				break
			}
			key := Pair{min(u, v), max(u, v)}
			if seen[key] {
				ok = false
				break
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
		if ok {
			return pairs, nil
		}
	}

	return nil, ErrRandomRegularUnsatisfiable
}
