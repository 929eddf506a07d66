// File: options.go
// Role: Option — functional-options config for the topology constructors,
//       generalizing the teacher's builderConfig (config.go) from a fixed
//       string-keyed, int64-weighted core.Graph to an arbitrary (K, E).
package literal

import (
	"math/rand"
	"strconv"
)

// IDFunc maps a topology's 0-based vertex index to a node key. There is no
// generic default the way the teacher defaults to decimalID for string
// keys — K is a type parameter, so callers must supply one via WithIDFunc.
type IDFunc[K comparable] func(index int) K

// WeightFunc computes the weight for the edge between vertex indices i and
// j. Called once per realized edge, after rng (if any) has been seeded by
// WithSeed, so it may consult rng for stochastic weights.
type WeightFunc[E any] func(i, j int, rng *rand.Rand) E

type config[K comparable, E any] struct {
	idFn     IDFunc[K]
	weightFn WeightFunc[E]
	rng      *rand.Rand
}

func newConfig[K comparable, E any](opts ...Option[K, E]) config[K, E] {
	cfg := config[K, E]{
		weightFn: func(int, int, *rand.Rand) E { var zero E; return zero },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures a topology constructor.
type Option[K comparable, E any] func(*config[K, E])

// WithIDFunc sets how vertex indices become node keys. Required by every
// topology constructor; omitting it is ErrMissingIDFunc.
func WithIDFunc[K comparable, E any](fn IDFunc[K]) Option[K, E] {
	return func(c *config[K, E]) { c.idFn = fn }
}

// WithWeightFunc sets how edge weights are computed. The default produces
// the zero value of E.
func WithWeightFunc[K comparable, E any](fn WeightFunc[E]) Option[K, E] {
	return func(c *config[K, E]) { c.weightFn = fn }
}

// WithConstantWeight is a WithWeightFunc shorthand for a fixed weight on
// every edge, matching the teacher's default constWeight policy.
func WithConstantWeight[K comparable, E any](w E) Option[K, E] {
	return func(c *config[K, E]) {
		c.weightFn = func(int, int, *rand.Rand) E { return w }
	}
}

// WithSeed seeds the *rand.Rand that BuildUndirected/BuildDirected pass to
// the WeightFunc, freezing any WeightFunc that consults rng, matching the
// teacher's WithSeed. RandomSparsePairs and RandomRegularPairs take their
// own *rand.Rand argument and are not affected by WithSeed.
func WithSeed[K comparable, E any](seed int64) Option[K, E] {
	return func(c *config[K, E]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// DecimalStringID is a ready-made IDFunc for the common case of string
// keys rendered as "0", "1", "2", ..., matching the teacher's decimalID.
func DecimalStringID(index int) string {
	return strconv.Itoa(index)
}
