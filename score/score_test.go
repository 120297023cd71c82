package score_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/score"
	"github.com/katalvlaran/meteobn/table"
)

func discrete(t *testing.T, cols []string, cards []int, rows ...[]int) *table.Discrete {
	t.Helper()
	d, err := table.NewDiscrete(cols, cards, rows)
	require.NoError(t, err)

	return d
}

func TestCount_MixedRadix(t *testing.T) {
	d := discrete(t, []string{"A", "B", "X"}, []int{2, 3, 2},
		[]int{1, 2, 0},
		[]int{1, 2, 1},
		[]int{0, 1, 1},
		[]int{0, table.Missing, 1},
	)
	c, err := score.Count(d, "X", []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 6, c.Q)
	assert.Equal(t, 2, c.R)
	assert.Equal(t, 3, c.N, "rows with a missing parent are skipped")
	assert.Equal(t, 2.0, c.Nij[1*3+2])
	assert.Equal(t, 1.0, c.At(0*3+1, 1))

	_, err = score.Count(d, "Z", nil)
	assert.ErrorIs(t, err, score.ErrUnknownVariable)
}

func TestLocalFormulas(t *testing.T) {
	d := discrete(t, []string{"X"}, []int{2}, []int{0}, []int{0}, []int{1})
	c, err := score.Count(d, "X", nil)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(1.0/12), score.K2(c), 1e-12)
	// with q = 1 and ess = r, BDeu coincides with K2
	assert.InDelta(t, score.K2(c), score.BDeu(2)(c), 1e-12)
	want := 2*math.Log(2.0/3) + math.Log(1.0/3) - 0.5*math.Log(3)
	assert.InDelta(t, want, score.BIC(c), 1e-12)
}

func TestDependenceRaisesScore(t *testing.T) {
	// Y copies X: the family X→Y must beat the empty family under every score.
	var rows [][]int
	for i := 0; i < 100; i++ {
		rows = append(rows, []int{i % 2, i % 2})
	}
	d := discrete(t, []string{"X", "Y"}, []int{2, 2}, rows...)

	for _, name := range []string{"k2", "bdeu", "bic"} {
		fn, err := score.ByName(name, 10)
		require.NoError(t, err)
		s := score.NewScorer(d, fn)
		empty, err := s.Local("Y", nil)
		require.NoError(t, err)
		withX, err := s.Local("Y", []string{"X"})
		require.NoError(t, err)
		assert.Greater(t, withX, empty, name)
	}
}

func TestByNameErrors(t *testing.T) {
	_, err := score.ByName("aic", 1)
	assert.ErrorIs(t, err, score.ErrUnknownScore)
	_, err = score.ByName("BDeu", 0)
	assert.ErrorIs(t, err, score.ErrBadESS)
}

func TestScorerCacheAndTotal(t *testing.T) {
	d := discrete(t, []string{"A", "B", "C"}, []int{2, 2, 2},
		[]int{0, 0, 0}, []int{0, 1, 1}, []int{1, 0, 1}, []int{1, 1, 0})
	s := score.NewScorer(d, score.K2)

	v1, err := s.Local("C", []string{"B", "A"})
	require.NoError(t, err)
	v2, err := s.Local("C", []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	hits, misses := s.CacheStats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	g, err := core.FromEdges([]string{"A", "B", "C"}, []core.Edge{{From: "A", To: "C"}, {From: "B", To: "C"}})
	require.NoError(t, err)
	total, err := s.Total(g)
	require.NoError(t, err)
	la, _ := s.Local("A", nil)
	lb, _ := s.Local("B", nil)
	assert.InDelta(t, la+lb+v1, total, 1e-12)
}
