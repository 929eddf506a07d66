package concurrent

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures a ParallelBFS run via the functional-options idiom the
// rest of this module uses.
type Option[K comparable, N any, E any] func(*config[K, N, E])

type config[K comparable, N any, E any] struct {
	workers   int
	logger    *zap.Logger
	target    K
	hasTarget bool
}

func defaultConfig[K comparable, N any, E any]() config[K, N, E] {
	return config[K, N, E]{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
}

// WithWorkers bounds how many nodes a single wave expands concurrently.
// Non-positive values are ignored; the default is runtime.GOMAXPROCS(0).
func WithWorkers[K comparable, N any, E any](n int) Option[K, N, E] {
	return func(c *config[K, N, E]) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger attaches a *zap.Logger for worker-panic diagnostics. The
// default is zap.NewNop(), matching the rest of this module's ambient
// logging discipline: silent unless a caller opts in.
func WithLogger[K comparable, N any, E any](l *zap.Logger) Option[K, N, E] {
	return func(c *config[K, N, E]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTarget makes ParallelBFS stop after the wave in which any worker
// discovers key. Workers do not cancel one another: every expansion
// scheduled in that wave still runs to completion before ParallelBFS
// returns, and its discoveries are included in the Result.
func WithTarget[K comparable, N any, E any](key K) Option[K, N, E] {
	return func(c *config[K, N, E]) {
		c.target = key
		c.hasTarget = true
	}
}
