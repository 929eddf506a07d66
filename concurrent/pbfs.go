// File: pbfs.go
// Role: ParallelBFS — wave-based concurrent breadth-first traversal over
//       Node, grounded on 2lar-b2's errgroup.WithContext fan-out/fan-in
//       pairing (ddbRepository.GetAllGraphData) and zap field
//       logging idiom.
package concurrent

import (
	"context"
	"fmt"

	"github.com/juliuskoskela/gdsl/core"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is what ParallelBFS produces: the nodes discovered, in the order
// their wave finished (non-decreasing hop distance from start, same
// invariant search's BFS upholds single-threaded), the admitting edge for
// every discovered node (start excluded, since nothing admits it), and
// whether Target (if configured) was among them. Path reconstructs the
// shortest start->Target route from Edges.
type Result[K comparable, N any, E any] struct {
	Order []*Node[K, N, E]
	Edges []core.Edge[K, N, E]
	Found bool

	start     K
	target    K
	hasTarget bool
}

// Path backtracks Edges from Target to the traversal's start, mirroring
// search.SearchPath. Every node here is admitted at most once (tryDiscover's
// CAS rules out re-admission), so unlike PFS's lazy relaxation there is only
// ever one candidate edge per target key. Returns ErrNotFound if no Target
// was configured for this traversal or it was never reached.
func (r *Result[K, N, E]) Path() ([]core.Edge[K, N, E], error) {
	if !r.hasTarget || !r.Found {
		return nil, ErrNotFound
	}

	path := reconstructPath(r.Edges, r.start, r.target)
	if path == nil && r.start != r.target {
		return nil, ErrNotFound
	}

	return path, nil
}

// ParallelBFS explores start's component wave by wave: every node in the
// current frontier expands its neighbors concurrently, bounded by
// WithWorkers, and the next frontier is the set of newly discovered nodes
// across all of them. A node is marked discovered the instant any worker's
// CAS succeeds, so two workers racing to reach the same node by different
// paths never both admit it.
//
// ParallelBFS always clears the discovered flag of every node it touched
// before returning — success, error, or panic — so the same graph can be
// traversed again. This is the "O(touched) cleanup" spec's design notes
// call for: a node never reached by this traversal is never locked,
// CAS'd, or reset.
func ParallelBFS[K comparable, N any, E any](ctx context.Context, start *Node[K, N, E], opts ...Option[K, N, E]) (*Result[K, N, E], error) {
	cfg := defaultConfig[K, N, E]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if start.Poisoned() {
		return nil, ErrPoisoned
	}

	touched := []*Node[K, N, E]{start}
	defer func() {
		for _, n := range touched {
			n.resetDiscovered()
		}
	}()

	start.tryDiscover()
	result := &Result[K, N, E]{
		Order:     []*Node[K, N, E]{start},
		start:     start.Key(),
		target:    cfg.target,
		hasTarget: cfg.hasTarget,
	}
	if cfg.hasTarget && start.Key() == cfg.target {
		result.Found = true
		return result, nil
	}

	frontier := []*Node[K, N, E]{start}

	for len(frontier) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.workers)

		discoveredNodes := make([][]*Node[K, N, E], len(frontier))
		discoveredEdges := make([][]core.Edge[K, N, E], len(frontier))
		foundAt := -1

		for i, n := range frontier {
			i, n := i, n
			g.Go(func() error {
				return expand(gctx, n, &cfg, &discoveredNodes[i], &discoveredEdges[i])
			})
		}

		err := g.Wait()
		for _, found := range discoveredNodes {
			touched = append(touched, found...)
		}
		if err != nil {
			return nil, fmt.Errorf("concurrent: %w", err)
		}

		var next []*Node[K, N, E]
		for i, found := range discoveredNodes {
			for j, n := range found {
				result.Order = append(result.Order, n)
				result.Edges = append(result.Edges, discoveredEdges[i][j])
				next = append(next, n)
				if cfg.hasTarget && n.Key() == cfg.target {
					foundAt = i
				}
			}
		}
		if foundAt >= 0 {
			result.Found = true
			return result, nil
		}
		frontier = next
	}

	return result, nil
}

// expand enumerates n's neighbors, admitting every one whose discovered CAS
// succeeds into *outNodes along with the admitting edge into *outEdges. It
// returns ErrPoisoned without expanding if n is poisoned. A panic here is
// recovered and converted
// into a poison flag on n plus a logged error, rather than taking down the
// whole wave's errgroup.
func expand[K comparable, N any, E any](ctx context.Context, n *Node[K, N, E], cfg *config[K, N, E], outNodes *[]*Node[K, N, E], outEdges *[]core.Edge[K, N, E]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			n.poisoned.Store(true)
			cfg.logger.Error("concurrent: worker panic, node poisoned",
				zap.Any("recovered", r))
			err = fmt.Errorf("concurrent: recovered panic expanding node: %v", r)
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if n.Poisoned() {
		return ErrPoisoned
	}

	for e := range n.Neighbors() {
		target, ok := e.Target.(*Node[K, N, E])
		if !ok {
			continue
		}
		if target.tryDiscover() {
			*outNodes = append(*outNodes, target)
			*outEdges = append(*outEdges, e)
		}
	}

	return nil
}
