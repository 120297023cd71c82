package bayesnet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/matrix"
	"github.com/katalvlaran/meteobn/score"
	"github.com/katalvlaran/meteobn/table"
)

// stochasticTol bounds |Σ row - 1| for hand-written tables.
const stochasticTol = 1e-6

// Fit builds a network over the columns of d with structure g and estimates
// its CPTs. Variables of d that g does not mention become isolated nodes.
//
// Errors: ErrInvalidGraph if g references a variable absent from d,
// ErrBadPseudoCount.
func Fit(g *core.Graph, d *table.Discrete, opts ...Option) (*Network, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil table", ErrInvalidGraph)
	}
	n, err := New(g, d.Columns, d.Cards)
	if err != nil {
		return nil, err
	}

	return n.Refit(d, opts...)
}

// Refit returns a new network with the same structure and CPTs estimated
// from d. The receiver is not modified.
//
// Implementation:
//   - Stage 1: Match every variable to a column of d with the same cardinality.
//   - Stage 2: Count each family over rows where it is fully observed.
//   - Stage 3: Add the pseudo count to every cell and normalise each row;
//     an all-zero row (unseen configuration, no smoothing) becomes uniform.
func (n *Network) Refit(d *table.Discrete, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.PseudoCount < 0 || math.IsNaN(o.PseudoCount) || math.IsInf(o.PseudoCount, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadPseudoCount, o.PseudoCount)
	}

	for _, v := range n.variables {
		k, err := d.Card(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q absent from the table", ErrInvalidGraph, v)
		}
		if k != n.nodes[v].card {
			return nil, fmt.Errorf("%w: %q has %d states in the table, %d in the network", ErrInvalidGraph, v, k, n.nodes[v].card)
		}
	}

	out := n.withNodes()
	for _, v := range n.variables {
		nd := out.nodes[v]
		c, err := score.Count(d, v, nd.parents)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
		}
		cells := make([]float64, len(c.Nijk))
		for i, x := range c.Nijk {
			cells[i] = x + o.PseudoCount
		}
		cpt, err := matrix.NewDenseFrom(c.Q, c.R, cells)
		if err != nil {
			return nil, err
		}
		if _, err = matrix.NormalizeRowsL1(cpt); err != nil {
			return nil, err
		}
		nd.cpt = cpt
	}
	out.fitted = true

	return out, nil
}

// FromTables builds a fitted network from an edge list and row-major CPTs:
// cpts[v] holds q×r probabilities, rows ordered by the sorted parents of v
// in mixed radix.
func FromTables(variables []string, cards []int, edges []core.Edge, cpts map[string][]float64) (*Network, error) {
	n, err := FromEdges(variables, cards, edges)
	if err != nil {
		return nil, err
	}

	out := n.withNodes()
	for _, v := range variables {
		nd := out.nodes[v]
		data, ok := cpts[v]
		if !ok {
			return nil, fmt.Errorf("%w: no table for %q", ErrInvalidCPT, v)
		}
		cpt, err := matrix.NewDenseFrom(nd.configs(), nd.card, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCPT, v, err)
		}
		if err = matrix.ValidateStochastic(cpt, stochasticTol); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCPT, v, err)
		}
		nd.cpt = cpt
	}
	for v := range cpts {
		if _, ok := out.nodes[v]; !ok {
			return nil, fmt.Errorf("%w: table for unknown variable %q", ErrInvalidCPT, v)
		}
	}
	out.fitted = true

	return out, nil
}

// withNodes copies n with fresh node records sharing the immutable graph.
func (n *Network) withNodes() *Network {
	out := &Network{
		graph:     n.graph,
		variables: n.variables,
		order:     n.order,
		nodes:     make(map[string]*node, len(n.nodes)),
	}
	for v, nd := range n.nodes {
		cp := *nd
		out.nodes[v] = &cp
	}

	return out
}
