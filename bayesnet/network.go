package bayesnet

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/dfs"
	"github.com/katalvlaran/meteobn/matrix"
	"github.com/katalvlaran/meteobn/table"
)

// Network is a Dependency Graph with per-node CPTs. It is safe for
// concurrent readers; no method mutates it.
type Network struct {
	graph     *core.Graph
	variables []string // column order
	order     []string // topological, ties by column order
	nodes     map[string]*node
	fitted    bool
}

// New builds an unfitted network over variables with the given
// cardinalities. Every vertex of g must be a variable; variables absent from
// g become isolated nodes. g is copied.
func New(g *core.Graph, variables []string, cards []int) (*Network, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidGraph)
	}
	if len(cards) != len(variables) {
		return nil, fmt.Errorf("%w: %d cardinalities for %d variables", ErrInvalidGraph, len(cards), len(variables))
	}

	cp := core.NewGraph()
	card := make(map[string]int, len(variables))
	for i, v := range variables {
		if _, dup := card[v]; dup {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrInvalidGraph, v)
		}
		if cards[i] < 1 {
			return nil, fmt.Errorf("%w: variable %q has cardinality %d", ErrInvalidGraph, v, cards[i])
		}
		if err := cp.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
		}
		card[v] = cards[i]
	}
	for _, v := range g.Vertices() {
		if _, ok := card[v]; !ok {
			return nil, fmt.Errorf("%w: graph references %q which is not a variable", ErrInvalidGraph, v)
		}
	}
	for _, e := range g.Edges() {
		if err := cp.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidGraph, e, err)
		}
	}

	order, err := dfs.TopologicalSort(cp, dfs.WithPriority(variables))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}

	n := &Network{
		graph:     cp,
		variables: append([]string(nil), variables...),
		order:     order,
		nodes:     make(map[string]*node, len(variables)),
	}
	for _, v := range variables {
		ps, _ := cp.Parents(v)
		pc := make([]int, len(ps))
		for i, p := range ps {
			pc[i] = card[p]
		}
		n.nodes[v] = &node{name: v, card: card[v], parents: ps, parentCards: pc}
	}

	return n, nil
}

// FromEdges builds an unfitted network from an edge list. A cyclic list
// fails with ErrInvalidGraph naming the cycle.
func FromEdges(variables []string, cards []int, edges []core.Edge) (*Network, error) {
	g, err := core.FromEdges(variables, edges)
	if err != nil {
		if errors.Is(err, core.ErrCycle) {
			if has, cycles, derr := dfs.DetectCycles(variables, edges); derr == nil && has {
				return nil, fmt.Errorf("%w: cycle %v", ErrInvalidGraph, cycles[0])
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}

	return New(g, variables, cards)
}

// Variables returns the variable names in column order.
func (n *Network) Variables() []string { return append([]string(nil), n.variables...) }

// Order returns a topological order (parents first, ties by column order).
func (n *Network) Order() []string { return append([]string(nil), n.order...) }

// Graph returns a copy of the Dependency Graph.
func (n *Network) Graph() *core.Graph { return n.graph.Clone() }

// Edges returns the graph edges sorted by (From, To).
func (n *Network) Edges() []core.Edge { return n.graph.Edges() }

// Fitted reports whether every node has a CPT.
func (n *Network) Fitted() bool { return n.fitted }

func (n *Network) node(v string) (*node, error) {
	nd, ok := n.nodes[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, v)
	}

	return nd, nil
}

// Card returns the number of states of v.
func (n *Network) Card(v string) (int, error) {
	nd, err := n.node(v)
	if err != nil {
		return 0, err
	}

	return nd.card, nil
}

// Parents returns the sorted parents of v.
func (n *Network) Parents(v string) ([]string, error) {
	nd, err := n.node(v)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), nd.parents...), nil
}

// CPT returns a copy of v's table.
func (n *Network) CPT(v string) (*matrix.Dense, error) {
	nd, err := n.node(v)
	if err != nil {
		return nil, err
	}
	if nd.cpt == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnfitted, v)
	}

	return nd.cpt.Clone(), nil
}

// ConfigIndex returns the CPT row of v selected by the parent states in a.
func (n *Network) ConfigIndex(v string, a Assignment) (int, error) {
	nd, err := n.node(v)
	if err != nil {
		return 0, err
	}

	return nd.configIndex(a)
}

func (nd *node) configIndex(a Assignment) (int, error) {
	j := 0
	for i, p := range nd.parents {
		s, ok := a[p]
		if !ok {
			return 0, fmt.Errorf("%w: parent %q of %q", ErrIncomplete, p, nd.name)
		}
		if s < 0 || s >= nd.parentCards[i] {
			return 0, fmt.Errorf("%w: %s=%d (card %d)", ErrStateOutOfRange, p, s, nd.parentCards[i])
		}
		j = j*nd.parentCards[i] + s
	}

	return j, nil
}

// Distribution returns P(v | parents as in a), a copy of one CPT row.
func (n *Network) Distribution(v string, a Assignment) ([]float64, error) {
	nd, err := n.node(v)
	if err != nil {
		return nil, err
	}
	if nd.cpt == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnfitted, v)
	}
	j, err := nd.configIndex(a)
	if err != nil {
		return nil, err
	}

	return nd.cpt.Row(j)
}

// LogProb returns log P(a) for a complete assignment.
func (n *Network) LogProb(a Assignment) (float64, error) {
	if !n.fitted {
		return 0, ErrUnfitted
	}
	lp := 0.0
	for _, v := range n.order {
		nd := n.nodes[v]
		s, ok := a[v]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrIncomplete, v)
		}
		if s < 0 || s >= nd.card {
			return 0, fmt.Errorf("%w: %s=%d (card %d)", ErrStateOutOfRange, v, s, nd.card)
		}
		j, err := nd.configIndex(a)
		if err != nil {
			return 0, err
		}
		p := nd.cpt.RawRow(j)[s]
		if p == 0 {
			return math.Inf(-1), nil
		}
		lp += math.Log(p)
	}

	return lp, nil
}

// LogLikelihood sums LogProb over the complete rows of d and returns the
// number of rows used. Columns of d absent from the network are ignored.
func (n *Network) LogLikelihood(d *table.Discrete) (float64, int, error) {
	if !n.fitted {
		return 0, 0, ErrUnfitted
	}
	for _, v := range n.variables {
		if d.Index(v) < 0 {
			return 0, 0, fmt.Errorf("%w: %q absent from the table", ErrInvalidGraph, v)
		}
	}

	ll, used := 0.0, 0
	for i, row := range d.Rows {
		if len(d.MissingColumns(i)) > 0 {
			continue
		}
		lp, err := n.LogProb(FromRow(d.Columns, row))
		if err != nil {
			return 0, 0, err
		}
		ll += lp
		used++
	}

	return ll, used, nil
}
