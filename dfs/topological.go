// Package dfs provides topological sort on the acyclic core.Graph.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
//
// The ordering is the post-order of an upward (parent-following) forest
// walk: each vertex is emitted right after all of its ancestors. Restarts
// follow the caller's priority list, so a graph without edges sorts
// exactly in priority order and ties are always broken the same way.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"context"

	"github.com/katalvlaran/meteobn/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx      context.Context // allows cancellation; defaults to Background
	priority []string        // restart order; empty = ascending IDs
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithPriority makes vertices appear as early as their ancestors allow,
// in the given order. Typically the data set's column order.
func WithPriority(ids []string) TopoOption {
	return func(o *topoOptions) {
		o.priority = ids
	}
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil. Cancellation surfaces as ctx.Err().
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Upward post-order forest walk
	res, err := DFS(g, "",
		WithContext(opts.ctx),
		WithUpward(),
		WithFullTraversal(),
		WithRootOrder(opts.priority),
	)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
