// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a set of start vertices,
// with optional hooks, depth limiting, direction and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/meteobn/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from every ID in starts
// (multi-source; duplicates ignored), applying any number of Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, starts []string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range starts {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, id)
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	for _, id := range starts {
		if !w.visited[id] {
			w.enqueue(id, 0, "")
		}
	}

	return w.res, w.loop()
}

// Ancestors returns the sorted set of ids together with all their ancestors.
// Inference prunes every variable outside this set: a node that is neither
// queried, observed, nor an ancestor of one sums out to 1.
func Ancestors(g *core.Graph, ids []string, opts ...Option) ([]string, error) {
	res, err := BFS(g, ids, append(opts, WithUpward())...)
	if err != nil {
		return nil, err
	}
	out := append([]string(nil), res.Order...)
	sort.Strings(out)

	return out, nil
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit(%q): %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors pushes the unvisited neighbors of item in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	var (
		nbs []string
		err error
	)
	if w.opts.Upward {
		nbs, err = w.graph.Parents(item.id)
	} else {
		nbs, err = w.graph.Children(item.id)
	}
	if err != nil {
		return fmt.Errorf("bfs: neighbors(%q): %w", item.id, err)
	}

	for _, nbr := range nbs {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
