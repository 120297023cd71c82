package inference_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/inference"
	"github.com/katalvlaran/meteobn/table"
)

// twoNode is A→B with P(A) = [0.3 0.7], P(B|A=0) = [0.9 0.1], P(B|A=1) = [0.2 0.8].
func twoNode(t *testing.T) *bayesnet.Network {
	t.Helper()
	n, err := bayesnet.FromTables([]string{"A", "B"}, []int{2, 2}, []core.Edge{{From: "A", To: "B"}},
		map[string][]float64{
			"A": {0.3, 0.7},
			"B": {0.9, 0.1, 0.2, 0.8},
		})
	require.NoError(t, err)

	return n
}

// fiveNode has a v-structure at C, a shared child E of A and C, and leaf D.
func fiveNode(t *testing.T) *bayesnet.Network {
	t.Helper()
	n, err := bayesnet.FromTables(
		[]string{"A", "B", "C", "D", "E"},
		[]int{2, 3, 2, 2, 3},
		[]core.Edge{{From: "A", To: "C"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "C", To: "E"}, {From: "A", To: "E"}},
		map[string][]float64{
			"A": {0.6, 0.4},
			"B": {0.2, 0.5, 0.3},
			"C": {0.9, 0.1, 0.7, 0.3, 0.4, 0.6, 0.3, 0.7, 0.5, 0.5, 0.1, 0.9},
			"D": {0.8, 0.2, 0.25, 0.75},
			"E": {0.6, 0.3, 0.1, 0.1, 0.2, 0.7, 0.3, 0.4, 0.3, 0.2, 0.2, 0.6},
		})
	require.NoError(t, err)

	return n
}

// bruteForce enumerates the full joint and returns P(targets | evidence) in
// row-major order over targets.
func bruteForce(t *testing.T, n *bayesnet.Network, targets []string, evidence bayesnet.Assignment) []float64 {
	t.Helper()
	vars := n.Variables()
	cards := make([]int, len(vars))
	total := 1
	for i, v := range vars {
		cards[i], _ = n.Card(v)
		total *= cards[i]
	}
	size := 1
	for _, v := range targets {
		k, _ := n.Card(v)
		size *= k
	}
	out := make([]float64, size)
	z := 0.0
	for idx := 0; idx < total; idx++ {
		a := bayesnet.Assignment{}
		rest := idx
		for i := len(vars) - 1; i >= 0; i-- {
			a[vars[i]] = rest % cards[i]
			rest /= cards[i]
		}
		match := true
		for v, s := range evidence {
			if a[v] != s {
				match = false
			}
		}
		if !match {
			continue
		}
		lp, err := n.LogProb(a)
		require.NoError(t, err)
		p := math.Exp(lp)
		ti := 0
		for _, v := range targets {
			k, _ := n.Card(v)
			ti = ti*k + a[v]
		}
		out[ti] += p
		z += p
	}
	for i := range out {
		out[i] /= z
	}

	return out
}

func TestMAP_TwoNodeByHand(t *testing.T) {
	e, err := inference.NewVariableElimination(twoNode(t))
	require.NoError(t, err)

	// A=1 is the parent's most frequent bin; B's mode under it is 1.
	got, err := e.MAP([]string{"B"}, bayesnet.Assignment{"A": 1})
	require.NoError(t, err)
	assert.Equal(t, bayesnet.Assignment{"B": 1}, got)

	got, err = e.MAP([]string{"B"}, bayesnet.Assignment{"A": 0})
	require.NoError(t, err)
	assert.Equal(t, bayesnet.Assignment{"B": 0}, got)

	// joint: (0,0)=.27 (0,1)=.03 (1,0)=.14 (1,1)=.56
	got, err = e.MAP([]string{"A", "B"}, nil)
	require.NoError(t, err)
	assert.Equal(t, bayesnet.Assignment{"A": 1, "B": 1}, got)

	// diagnostic direction: P(A=0|B=0) = .27/.41
	post, err := e.Query([]string{"A"}, bayesnet.Assignment{"B": 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.27 / 0.41, 0.14 / 0.41}, post.Values(), 1e-12)
	got, err = e.MAP([]string{"A"}, bayesnet.Assignment{"B": 0})
	require.NoError(t, err)
	assert.Equal(t, bayesnet.Assignment{"A": 0}, got)
}

func TestMAP_FittedFromData(t *testing.T) {
	d, err := table.NewDiscrete([]string{"P", "C"}, []int{3, 3}, [][]int{
		{2, 1}, {2, 1}, {2, 1}, {2, 0}, {2, 2},
		{0, 0}, {1, 2},
	})
	require.NoError(t, err)
	g, err := core.FromEdges(nil, []core.Edge{{From: "P", To: "C"}})
	require.NoError(t, err)
	n, err := bayesnet.Fit(g, d)
	require.NoError(t, err)

	// P(C|P=2) = (1+1, 3+1, 1+1)/8
	e, err := inference.NewVariableElimination(n)
	require.NoError(t, err)
	got, err := e.MAP([]string{"C"}, bayesnet.Assignment{"P": 2})
	require.NoError(t, err)
	assert.Equal(t, 1, got["C"])
}

func TestMAP_TieGoesToLowestIndex(t *testing.T) {
	n, err := bayesnet.FromTables([]string{"X", "Y"}, []int{3, 2}, nil, map[string][]float64{
		"X": {0.2, 0.4, 0.4},
		"Y": {0.5, 0.5},
	})
	require.NoError(t, err)
	e, err := inference.NewVariableElimination(n)
	require.NoError(t, err)

	got, err := e.MAP([]string{"X", "Y"}, nil)
	require.NoError(t, err)
	assert.Equal(t, bayesnet.Assignment{"X": 1, "Y": 0}, got)
}

func TestQuery_MatchesBruteForce(t *testing.T) {
	n := fiveNode(t)
	cases := []struct {
		targets  []string
		evidence bayesnet.Assignment
	}{
		{[]string{"B"}, bayesnet.Assignment{"D": 1, "E": 2}},
		{[]string{"A", "C"}, bayesnet.Assignment{"E": 0}},
		{[]string{"E"}, bayesnet.Assignment{"B": 2}},
		{[]string{"C", "A"}, nil},
		{[]string{"D", "B"}, bayesnet.Assignment{"A": 1}},
	}
	for _, h := range []inference.Heuristic{inference.MinDegree, inference.MinFill} {
		e, err := inference.NewVariableElimination(n, inference.WithOrdering(h))
		require.NoError(t, err)
		for _, tc := range cases {
			post, err := e.Query(tc.targets, tc.evidence)
			require.NoError(t, err)
			assert.Equal(t, tc.targets, post.Vars())
			assert.InDeltaSlice(t, bruteForce(t, n, tc.targets, tc.evidence), post.Values(), 1e-12,
				"%s %v | %s", h, tc.targets, tc.evidence)

			v, err := post.At(post.ArgMax())
			require.NoError(t, err)
			for _, x := range post.Values() {
				assert.LessOrEqual(t, x, v)
			}
		}
	}
}

func TestEliminationOrder_PrunesBarrenNodes(t *testing.T) {
	n := fiveNode(t)
	e, err := inference.NewVariableElimination(n)
	require.NoError(t, err)

	order, err := e.EliminationOrder([]string{"A"}, nil)
	require.NoError(t, err)
	assert.Empty(t, order, "descendants of A are barren")

	order, err = e.EliminationOrder([]string{"A"}, bayesnet.Assignment{"D": 0})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C"}, order)
}

func TestQuery_Errors(t *testing.T) {
	e, err := inference.NewVariableElimination(twoNode(t))
	require.NoError(t, err)

	_, err = e.MAP(nil, nil)
	assert.ErrorIs(t, err, inference.ErrBadQuery)
	_, err = e.MAP([]string{"Z"}, nil)
	assert.ErrorIs(t, err, inference.ErrUnknownVariable)
	_, err = e.MAP([]string{"A", "A"}, nil)
	assert.ErrorIs(t, err, inference.ErrBadQuery)
	_, err = e.MAP([]string{"A"}, bayesnet.Assignment{"A": 0})
	assert.ErrorIs(t, err, inference.ErrBadQuery)
	_, err = e.MAP([]string{"A"}, bayesnet.Assignment{"B": 2})
	assert.ErrorIs(t, err, inference.ErrBadQuery)
	_, err = e.MAP([]string{"A"}, bayesnet.Assignment{"Q": 0})
	assert.ErrorIs(t, err, inference.ErrUnknownVariable)

	skel, err := bayesnet.New(core.NewGraph(), []string{"A"}, []int{2})
	require.NoError(t, err)
	_, err = inference.NewVariableElimination(skel)
	assert.ErrorIs(t, err, bayesnet.ErrUnfitted)

	_, err = inference.NewVariableElimination(twoNode(t), inference.WithOrdering(inference.Heuristic(9)))
	assert.ErrorIs(t, err, inference.ErrBadHeuristic)
}

func TestMAP_InconsistentEvidence(t *testing.T) {
	n, err := bayesnet.FromTables([]string{"A", "B"}, []int{2, 2}, []core.Edge{{From: "A", To: "B"}},
		map[string][]float64{
			"A": {1, 0},
			"B": {1, 0, 0.5, 0.5},
		})
	require.NoError(t, err)
	e, err := inference.NewVariableElimination(n)
	require.NoError(t, err)

	_, err = e.MAP([]string{"A"}, bayesnet.Assignment{"B": 1})
	assert.ErrorIs(t, err, inference.ErrInconsistentEvidence)
	_, err = e.Query([]string{"A"}, bayesnet.Assignment{"B": 1})
	assert.ErrorIs(t, err, inference.ErrInconsistentEvidence)
}

func TestQuery_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, err := inference.NewVariableElimination(fiveNode(t), inference.WithContext(ctx))
	require.NoError(t, err)
	_, err = e.MAP([]string{"A"}, bayesnet.Assignment{"D": 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseHeuristic(t *testing.T) {
	h, err := inference.ParseHeuristic("Min-Fill")
	require.NoError(t, err)
	assert.Equal(t, inference.MinFill, h)
	assert.Equal(t, "min-degree", inference.MinDegree.String())
	_, err = inference.ParseHeuristic("random")
	assert.ErrorIs(t, err, inference.ErrBadHeuristic)
}

func BenchmarkMAP(b *testing.B) {
	n, err := bayesnet.FromTables(
		[]string{"A", "B", "C", "D", "E"},
		[]int{2, 3, 2, 2, 3},
		[]core.Edge{{From: "A", To: "C"}, {From: "B", To: "C"}, {From: "C", To: "D"}, {From: "C", To: "E"}, {From: "A", To: "E"}},
		map[string][]float64{
			"A": {0.6, 0.4},
			"B": {0.2, 0.5, 0.3},
			"C": {0.9, 0.1, 0.7, 0.3, 0.4, 0.6, 0.3, 0.7, 0.5, 0.5, 0.1, 0.9},
			"D": {0.8, 0.2, 0.25, 0.75},
			"E": {0.6, 0.3, 0.1, 0.1, 0.2, 0.7, 0.3, 0.4, 0.3, 0.2, 0.2, 0.6},
		})
	if err != nil {
		b.Fatal(err)
	}
	e, err := inference.NewVariableElimination(n)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.MAP([]string{"B"}, bayesnet.Assignment{"D": 1, "E": 2}); err != nil {
			b.Fatal(err)
		}
	}
}
