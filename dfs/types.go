// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// direction selection, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort or DetectCycles.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the graph.
	FullTraversal bool

	// Upward walks parent links instead of child links. A post-order upward
	// walk emits every vertex after all of its ancestors.
	Upward bool

	// RootOrder, if non-empty, fixes the order in which FullTraversal
	// restarts. Vertices not listed follow in sorted order.
	RootOrder []string

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No hooks, no depth limit, no filtering
//   - Downward single-source traversal
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor IDs; false skips the neighbor.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// WithUpward follows parent links instead of child links.
func WithUpward() Option {
	return func(o *DFSOptions) {
		o.Upward = true
	}
}

// WithRootOrder fixes the restart order of a full traversal.
func WithRootOrder(ids []string) Option {
	return func(o *DFSOptions) {
		o.RootOrder = append([]string(nil), ids...)
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from its tree root.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex from which it was first discovered.
	// Tree roots do not appear.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors FilterNeighbor rejected.
	SkippedNeighbors int
}
