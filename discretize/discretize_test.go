package discretize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/discretize"
	"github.com/katalvlaran/meteobn/table"
)

func column(t *testing.T, name string, xs ...float64) *table.Table {
	t.Helper()
	rows := make([][]float64, len(xs))
	for i, x := range xs {
		rows[i] = []float64{x}
	}
	tb, err := table.New([]string{name}, rows)
	require.NoError(t, err)

	return tb
}

func TestFit_Uniform(t *testing.T) {
	tb := column(t, "TEMP", 0, 1, 2, 3, 4, 5, 6, 7, 8)
	m, err := discretize.Fit(tb, discretize.WithStrategy(discretize.Uniform), discretize.WithBins(4))
	require.NoError(t, err)

	b, err := m.Bins("TEMP")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2, 4, 6, 8}, b.Edges, 1e-12)

	d, err := m.Transform(tb)
	require.NoError(t, err)
	col, err := d.Column("TEMP")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 3}, col)
}

func TestFit_KMeansSeparatesClusters(t *testing.T) {
	tb := column(t, "DEWP", 1, 1.1, 0.9, 10, 10.2, 9.8, 20, 20.1, 19.9)
	m, err := discretize.Fit(tb, discretize.WithBins(3))
	require.NoError(t, err)

	d, err := m.Transform(tb)
	require.NoError(t, err)
	col, _ := d.Column("DEWP")
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 2}, col)

	v, err := m.Value("DEWP", 1)
	require.NoError(t, err)
	// edges at 0.9, (1+10)/2, (10+20)/2, 20.1
	assert.InDelta(t, (5.5+15)/2, v, 1e-9)
}

func TestFit_QuantileAndDegenerate(t *testing.T) {
	tb := column(t, "WDSP", 1, 1, 1, 1, 1, 1, 2, 3)
	m, err := discretize.Fit(tb, discretize.WithStrategy(discretize.Quantile), discretize.WithBins(4))
	require.NoError(t, err)
	k, err := m.Card("WDSP")
	require.NoError(t, err)
	assert.Less(t, k, 4, "duplicate quantile edges are merged")
	assert.Equal(t, 4, m.Requested("WDSP"))
	assert.Equal(t, []string{"WDSP"}, m.Reduced())

	constant := column(t, "SLP", 1013, 1013, 1013)
	m, err = discretize.Fit(constant)
	require.NoError(t, err)
	b, _ := m.Bins("SLP")
	assert.Equal(t, []float64{1012.5, 1013.5}, b.Edges)
	assert.Equal(t, []string{"SLP"}, m.Reduced())
}

func TestFit_ReducedOnlyWhenCollapsed(t *testing.T) {
	tb := column(t, "TEMP", 0, 1, 2, 3, 4, 5, 6, 7, 8)
	m, err := discretize.Fit(tb, discretize.WithStrategy(discretize.Uniform), discretize.WithBins(4))
	require.NoError(t, err)
	assert.Empty(t, m.Reduced())

	three := column(t, "WDSP", 2, 2, 5, 5, 9, 9)
	m, err = discretize.Fit(three, discretize.WithStrategy(discretize.Quantile), discretize.WithBins(4))
	require.NoError(t, err)
	k, err := m.Card("WDSP")
	require.NoError(t, err)
	assert.Less(t, k, 4)
	assert.Equal(t, []string{"WDSP"}, m.Reduced())

	fixed, err := discretize.FromEdges([]string{"WDSP"}, map[string][]float64{"WDSP": {0, 5, 10}})
	require.NoError(t, err)
	assert.Zero(t, fixed.Requested("WDSP"))
	assert.Empty(t, fixed.Reduced())
}

func TestTransform_ClampAndStrict(t *testing.T) {
	train := column(t, "MAX", 0, 10)
	m, err := discretize.Fit(train, discretize.WithStrategy(discretize.Uniform), discretize.WithBins(2))
	require.NoError(t, err)

	test := column(t, "MAX", -5, 5, 15, math.NaN())
	d, err := m.Transform(test)
	require.NoError(t, err)
	col, _ := d.Column("MAX")
	assert.Equal(t, []int{0, 1, 1, table.Missing}, col)
	assert.Equal(t, 2, d.Clamped["MAX"])

	strict, err := discretize.Fit(train, discretize.WithStrategy(discretize.Uniform), discretize.WithBins(2), discretize.WithStrictRange())
	require.NoError(t, err)
	_, err = strict.Transform(test)
	assert.ErrorIs(t, err, discretize.ErrOutOfRange)
}

func TestRoundTripIdempotent(t *testing.T) {
	xs := []float64{12.3, 15.1, 9.7, 22.4, 18.8, 30.2, 25.5, 11.1, 14.4, 27.9, 8.2, 19.9}
	for _, s := range []discretize.Strategy{discretize.KMeans, discretize.Quantile, discretize.Uniform} {
		t.Run(string(s), func(t *testing.T) {
			tb := column(t, "TEMP", xs...)
			m, err := discretize.Fit(tb, discretize.WithStrategy(s), discretize.WithBins(4))
			require.NoError(t, err)

			d1, err := m.Transform(tb)
			require.NoError(t, err)
			back, err := m.Inverse(d1)
			require.NoError(t, err)
			d2, err := m.Transform(back)
			require.NoError(t, err)

			assert.Equal(t, d1.Rows, d2.Rows)
			assert.Empty(t, d2.Clamped)
			for i := range xs {
				assert.NotEqual(t, xs[i], back.Rows[i][0], "inverse is lossy")
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tb := column(t, "TEMP", 1, 2)
	_, err := discretize.Fit(tb, discretize.WithBins(0))
	assert.ErrorIs(t, err, discretize.ErrBadBins)
	_, err = discretize.Fit(tb, discretize.WithStrategy("median"))
	assert.ErrorIs(t, err, discretize.ErrBadStrategy)
	_, err = discretize.Fit(column(t, "TEMP", math.NaN()))
	assert.ErrorIs(t, err, discretize.ErrNoData)

	_, err = discretize.ParseStrategy("kmeans")
	assert.NoError(t, err)

	m, err := discretize.Fit(tb, discretize.WithColumnBins("TEMP", 2), discretize.WithStrategy(discretize.Uniform))
	require.NoError(t, err)
	_, err = m.Value("TEMP", 2)
	assert.ErrorIs(t, err, discretize.ErrBinOutOfBounds)
	_, err = m.Card("DEWP")
	assert.ErrorIs(t, err, discretize.ErrUnknownColumn)
}

func TestFromEdges(t *testing.T) {
	m, err := discretize.FromEdges([]string{"A"}, map[string][]float64{"A": {0, 1, 3}})
	require.NoError(t, err)
	v, err := m.Value("A", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = discretize.FromEdges([]string{"A"}, map[string][]float64{"A": {0, 0}})
	assert.ErrorIs(t, err, discretize.ErrBadBins)
}
