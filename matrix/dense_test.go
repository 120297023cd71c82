package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "data must be copied")
}

func TestAtSetAdd(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 2.5))
	require.NoError(t, m.Add(1, 0, 0.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0}, row)
	assert.Equal(t, []float64{3, 0}, m.RawRow(1))
}

func TestCloneAndApply(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 3, []float64{1, 2, 3})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))

	assert.Equal(t, []float64{2, 4, 6}, m.RawRow(0))
	assert.Equal(t, []float64{1, 2, 3}, c.RawRow(0))
	assert.ErrorIs(t, m.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) + v }), matrix.ErrNaNInf)
	assert.Equal(t, "[1, 2, 3]\n", c.String())
}
