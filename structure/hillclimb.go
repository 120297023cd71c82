package structure

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/score"
)

// tieTolerance absorbs floating-point noise between moves that are equal
// in exact arithmetic (e.g. A→C and C→A under a score-equivalent score).
const tieTolerance = 1e-9

// HillClimb searches for a high-scoring DAG over the columns of the
// Scorer's table.
//
// Implementation:
//   - Stage 1: Validate options; build the working graph (copy of the seed).
//   - Stage 2: Cache the local score of every family.
//   - Stage 3: Loop: enumerate legal moves, score them, apply the best one,
//     refresh the two affected local scores, record the step.
//
// Errors:
//   - ErrBadOption, ErrNoVariables, ErrStartGraph.
//   - Scorer errors; OnStep errors; ctx.Err() on cancellation. On an error
//     after the search started the partial Result is returned with it.
func HillClimb(s *score.Scorer, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	cols := s.Data().Columns
	if len(cols) == 0 {
		return nil, ErrNoVariables
	}

	g, err := seed(cols, o)
	if err != nil {
		return nil, err
	}

	loc := make(map[string]float64, len(cols))
	total := 0.0
	for _, c := range cols {
		ps, _ := g.Parents(c)
		v, err := s.Local(c, ps)
		if err != nil {
			return nil, err
		}
		loc[c] = v
		total += v
	}

	res := &Result{Graph: g, Score: total}
	var tabu []Move
	for it := 0; it < o.MaxIterations; it++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		res.Iterations = it + 1

		moves := enumerate(g, cols, tabu)
		deltas, err := scoreMoves(o.Ctx, o.Workers, s, g, loc, moves)
		if err != nil {
			return res, err
		}

		best := -1
		for i, d := range deltas {
			if best < 0 || d > deltas[best]+tieTolerance {
				best = i
			}
		}
		if best < 0 || deltas[best] < o.Epsilon {
			res.Converged = true
			break
		}

		m := moves[best]
		if err := apply(g, m); err != nil {
			return res, fmt.Errorf("structure: apply %s: %w", m, err)
		}
		for _, c := range []string{m.From, m.To} {
			ps, _ := g.Parents(c)
			if loc[c], err = s.Local(c, ps); err != nil {
				return res, err
			}
		}
		total += deltas[best]
		res.Score = total

		if o.TabuLength > 0 {
			tabu = append(tabu, m)
			if len(tabu) > o.TabuLength {
				tabu = tabu[1:]
			}
		}

		step := Step{Iteration: it, Move: m, Delta: deltas[best], Score: total}
		res.Trace = append(res.Trace, step)
		if o.OnStep != nil {
			if err := o.OnStep(step); err != nil {
				return res, fmt.Errorf("structure: OnStep: %w", err)
			}
		}
	}

	// resum from the cache to shed accumulated rounding
	if res.Score, err = s.Total(g); err != nil {
		return res, err
	}

	return res, nil
}

// seed builds the working graph over cols, copying the start graph's edges.
func seed(cols []string, o Options) (*core.Graph, error) {
	g := core.NewGraph(core.WithMaxInDegree(o.MaxIndegree))
	for _, c := range cols {
		if err := g.AddVertex(c); err != nil {
			return nil, err
		}
	}
	if o.StartGraph == nil {
		return g, nil
	}
	for _, v := range o.StartGraph.Vertices() {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: unknown variable %q", ErrStartGraph, v)
		}
	}
	for _, e := range o.StartGraph.Edges() {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrStartGraph, e, err)
		}
	}

	return g, nil
}

// enumerate lists legal, non-tabu moves in deterministic order.
func enumerate(g *core.Graph, cols []string, tabu []Move) []Move {
	isTabu := func(m Move) bool {
		inv := m.inverse()
		for _, t := range tabu {
			if t == inv {
				return true
			}
		}
		return false
	}

	var moves []Move
	for _, from := range cols {
		for _, to := range cols {
			if from == to {
				continue
			}
			if g.HasEdge(from, to) {
				if m := (Move{Kind: Remove, From: from, To: to}); !isTabu(m) {
					moves = append(moves, m)
				}
				if m := (Move{Kind: Reverse, From: from, To: to}); !isTabu(m) && g.CanReverseEdge(from, to) == nil {
					moves = append(moves, m)
				}
				continue
			}
			if g.HasEdge(to, from) {
				continue
			}
			if m := (Move{Kind: Add, From: from, To: to}); !isTabu(m) && g.CanAddEdge(from, to) == nil {
				moves = append(moves, m)
			}
		}
	}

	return moves
}

// scoreMoves computes the score change of every move; deltas[i] belongs to moves[i].
func scoreMoves(ctx context.Context, workers int, s *score.Scorer, g *core.Graph, loc map[string]float64, moves []Move) ([]float64, error) {
	parents := make(map[string][]string, len(loc))
	for c := range loc {
		parents[c], _ = g.Parents(c)
	}
	deltas := make([]float64, len(moves))

	if workers <= 1 || len(moves) < 2*workers {
		for i, m := range moves {
			d, err := delta(s, parents, loc, m)
			if err != nil {
				return nil, err
			}
			deltas[i] = d
		}
		return deltas, nil
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	chunk := (len(moves) + workers - 1) / workers
	for start := 0; start < len(moves); start += chunk {
		end := min(start+chunk, len(moves))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := egctx.Err(); err != nil {
					return err
				}
				d, err := delta(s, parents, loc, moves[i])
				if err != nil {
					return err
				}
				deltas[i] = d
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return deltas, nil
}

// delta scores one move from the current family scores.
func delta(s *score.Scorer, parents map[string][]string, loc map[string]float64, m Move) (float64, error) {
	switch m.Kind {
	case Add:
		v, err := s.Local(m.To, with(parents[m.To], m.From))
		return v - loc[m.To], err
	case Remove:
		v, err := s.Local(m.To, without(parents[m.To], m.From))
		return v - loc[m.To], err
	default:
		child, err := s.Local(m.To, without(parents[m.To], m.From))
		if err != nil {
			return 0, err
		}
		parent, err := s.Local(m.From, with(parents[m.From], m.To))
		return child - loc[m.To] + parent - loc[m.From], err
	}
}

func apply(g *core.Graph, m Move) error {
	switch m.Kind {
	case Add:
		return g.AddEdge(m.From, m.To)
	case Remove:
		return g.RemoveEdge(m.From, m.To)
	default:
		return g.ReverseEdge(m.From, m.To)
	}
}

func with(ps []string, x string) []string {
	out := make([]string, 0, len(ps)+1)
	return append(append(out, ps...), x)
}

func without(ps []string, x string) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		if p != x {
			out = append(out, p)
		}
	}

	return out
}
