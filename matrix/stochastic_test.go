package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/matrix"
)

func TestNormalizeRowsL1(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 2, []float64{
		1, 3,
		0, 0,
		2, 2,
	})
	require.NoError(t, err)

	sums, err := matrix.NormalizeRowsL1(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 4}, sums)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, m.RawRow(0), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, m.RawRow(1), 1e-12)
	require.NoError(t, matrix.ValidateStochastic(m, 1e-9))
}

func TestNormalizeRowsL1_Negative(t *testing.T) {
	m, err := matrix.NewDenseFrom(1, 2, []float64{1, -1})
	require.NoError(t, err)
	_, err = matrix.NormalizeRowsL1(m)
	assert.ErrorIs(t, err, matrix.ErrNegative)

	_, err = matrix.NormalizeRowsL1(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateStochastic(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{0.5, 0.5, 0.7, 0.2})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateStochastic(m, 1e-9), matrix.ErrNotStochastic)
}

func TestArgMaxRow_LowestIndexTie(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{
		0.2, 0.4, 0.4,
		0.5, 0.1, 0.4,
	})
	require.NoError(t, err)

	j, err := m.ArgMaxRow(0)
	require.NoError(t, err)
	assert.Equal(t, 1, j)

	j, err = m.ArgMaxRow(1)
	require.NoError(t, err)
	assert.Equal(t, 0, j)

	_, err = m.ArgMaxRow(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
