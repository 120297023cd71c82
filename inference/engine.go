package inference

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/bfs"
	"github.com/katalvlaran/meteobn/core"
)

// Engine runs variable elimination against one fitted network.
type Engine struct {
	net     *bayesnet.Network
	graph   *core.Graph
	opts    Options
	factors map[string]*Factor // CPT of v over (sorted parents..., v)
	rank    map[string]int     // column position, breaks ordering ties
}

// NewVariableElimination prepares an engine for net.
//
// Errors: bayesnet.ErrUnfitted for a nil or unfitted network,
// ErrBadHeuristic.
func NewVariableElimination(net *bayesnet.Network, opts ...Option) (*Engine, error) {
	if net == nil || !net.Fitted() {
		return nil, bayesnet.ErrUnfitted
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic != MinDegree && o.Heuristic != MinFill {
		return nil, fmt.Errorf("%w: %d", ErrBadHeuristic, int(o.Heuristic))
	}

	e := &Engine{
		net:     net,
		graph:   net.Graph(),
		opts:    o,
		factors: make(map[string]*Factor),
		rank:    make(map[string]int),
	}
	for i, v := range net.Variables() {
		e.rank[v] = i
		ps, _ := net.Parents(v)
		cpt, err := net.CPT(v)
		if err != nil {
			return nil, err
		}
		cards := make([]int, 0, len(ps)+1)
		for _, p := range ps {
			k, _ := net.Card(p)
			cards = append(cards, k)
		}
		cards = append(cards, cpt.Cols())

		f := newFactor(append(ps, v), cards)
		for j := 0; j < cpt.Rows(); j++ {
			copy(f.values[j*cpt.Cols():], cpt.RawRow(j))
		}
		e.factors[v] = f
	}

	return e, nil
}

// Network returns the network the engine queries.
func (e *Engine) Network() *bayesnet.Network { return e.net }

// MAP returns the most probable joint assignment of targets given evidence.
// Ties resolve to the lowest bin indices, first target most significant.
func (e *Engine) MAP(targets []string, evidence bayesnet.Assignment) (bayesnet.Assignment, error) {
	f, err := e.joint(targets, evidence)
	if err != nil {
		return nil, err
	}

	return f.ArgMax(), nil
}

// Query returns the posterior P(targets | evidence) as a normalised factor
// over targets in the given order.
func (e *Engine) Query(targets []string, evidence bayesnet.Assignment) (*Factor, error) {
	f, err := e.joint(targets, evidence)
	if err != nil {
		return nil, err
	}
	z := f.sum()
	for i := range f.values {
		f.values[i] /= z
	}

	return f, nil
}

// EliminationOrder reports the hidden-variable order a query would use.
func (e *Engine) EliminationOrder(targets []string, evidence bayesnet.Assignment) ([]string, error) {
	_, order, err := e.plan(targets, evidence)

	return order, err
}

// joint returns the unnormalised factor P(targets, evidence) over targets.
func (e *Engine) joint(targets []string, evidence bayesnet.Assignment) (*Factor, error) {
	factors, order, err := e.plan(targets, evidence)
	if err != nil {
		return nil, err
	}

	for _, v := range order {
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		var prod *Factor
		keep := factors[:0:0]
		for _, f := range factors {
			if f.index(v) < 0 {
				keep = append(keep, f)
				continue
			}
			if prod == nil {
				prod = f
			} else {
				prod = product(prod, f)
			}
		}
		if prod != nil {
			keep = append(keep, prod.sumOut(v))
		}
		factors = keep
	}

	out := newFactor(nil, nil)
	out.values[0] = 1
	for _, f := range factors {
		out = product(out, f)
	}
	out = out.reorder(targets)

	if z := out.sum(); !(z > 0) {
		return nil, fmt.Errorf("%w: %s", ErrInconsistentEvidence, evidence)
	}

	return out, nil
}

// plan validates the query, prunes to the ancestral set, applies evidence and
// picks the elimination order.
func (e *Engine) plan(targets []string, evidence bayesnet.Assignment) ([]*Factor, []string, error) {
	if len(targets) == 0 {
		return nil, nil, fmt.Errorf("%w: no targets", ErrBadQuery)
	}
	seen := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		if _, ok := e.factors[t]; !ok {
			return nil, nil, fmt.Errorf("%w: target %q", ErrUnknownVariable, t)
		}
		if _, dup := seen[t]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate target %q", ErrBadQuery, t)
		}
		if _, ok := evidence[t]; ok {
			return nil, nil, fmt.Errorf("%w: %q is both target and evidence", ErrBadQuery, t)
		}
		seen[t] = struct{}{}
	}

	keys := make([]string, 0, len(targets)+len(evidence))
	keys = append(keys, targets...)
	for v, s := range evidence {
		k, err := e.net.Card(v)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: evidence %q", ErrUnknownVariable, v)
		}
		if s < 0 || s >= k {
			return nil, nil, fmt.Errorf("%w: evidence %s=%d (card %d)", ErrBadQuery, v, s, k)
		}
		keys = append(keys, v)
	}
	sort.Strings(keys)

	relevant, err := bfs.Ancestors(e.graph, keys)
	if err != nil {
		return nil, nil, err
	}

	factors := make([]*Factor, 0, len(relevant))
	var hidden []string
	for _, v := range relevant {
		factors = append(factors, e.factors[v].reduce(evidence))
		_, isTarget := seen[v]
		_, isEvidence := evidence[v]
		if !isTarget && !isEvidence {
			hidden = append(hidden, v)
		}
	}

	return factors, eliminationOrder(factors, hidden, e.opts.Heuristic, e.rank), nil
}
