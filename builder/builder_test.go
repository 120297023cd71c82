package builder_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/builder"
	"github.com/katalvlaran/meteobn/table"
)

func TestXor(t *testing.T) {
	d, err := builder.Xor(2000, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, d.Columns)
	for _, row := range d.Rows {
		assert.Equal(t, row[0]^row[1], row[2])
	}
	pa, err := d.Frequencies("A")
	require.NoError(t, err)
	assert.InDelta(t, builder.XorPA, pa[1], 0.04)

	again, err := builder.Xor(2000, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, d.Rows, again.Rows)

	noisy, err := builder.Xor(2000, builder.WithSeed(7), builder.WithFlip(1))
	require.NoError(t, err)
	for _, row := range noisy.Rows {
		assert.NotEqual(t, row[0]^row[1], row[2])
	}
}

func TestChain(t *testing.T) {
	d, err := builder.Chain(500, 4, 3, 1, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"X0", "X1", "X2", "X3"}, d.Columns)
	assert.Equal(t, []int{3, 3, 3, 3}, d.Cards)
	for _, row := range d.Rows {
		assert.Equal(t, []int{row[0], row[0], row[0], row[0]}, row)
	}
}

func TestWeather_Invariants(t *testing.T) {
	w, err := builder.Weather(730, builder.WithSeed(11))
	require.NoError(t, err)
	require.Equal(t, builder.WeatherColumns, w.Columns)
	require.Equal(t, 730, w.Len())

	idx := func(c string) int { return w.Index(c) }
	for _, row := range w.Rows {
		assert.GreaterOrEqual(t, row[idx("MAX")], row[idx("TEMP")])
		assert.LessOrEqual(t, row[idx("MIN")], row[idx("TEMP")])
		assert.LessOrEqual(t, row[idx("DEWP")], row[idx("TEMP")])
		assert.GreaterOrEqual(t, row[idx("WDSP")], 0.5)
	}

	// Summer is warmer than winter.
	temp, err := w.Column("TEMP")
	require.NoError(t, err)
	assert.Greater(t, temp[200], temp[20])
}

func TestWeather_NoiseFreeIsSmooth(t *testing.T) {
	w, err := builder.Weather(3, builder.WithNoiseScale(0))
	require.NoError(t, err)
	row := w.Rows[0]
	assert.InDelta(t, row[w.Index("TEMP")]+7, row[w.Index("MAX")], 0.11)
	assert.InDelta(t, row[w.Index("TEMP")]-5, row[w.Index("DEWP")], 0.11)
}

func TestWeather_Missing(t *testing.T) {
	clean, err := builder.Weather(1000, builder.WithSeed(5))
	require.NoError(t, err)
	w, err := builder.Weather(1000, builder.WithSeed(5), builder.WithMissing(0.2, "SLP"))
	require.NoError(t, err)

	missing := 0
	for i, row := range w.Rows {
		for j, c := range w.Columns {
			if c == "SLP" {
				if table.IsMissing(row[j]) {
					missing++
				}
				continue
			}
			assert.False(t, table.IsMissing(row[j]))
			assert.Equal(t, clean.Rows[i][j], row[j], "measurements do not depend on blanking")
		}
	}
	assert.InDelta(t, 200, missing, 45)
}

func TestWriteWeatherCSV_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, builder.WriteWeatherCSV(&buf, 50, builder.WithSeed(2), builder.WithMissing(0.1), builder.WithStation("X1")))
	assert.Contains(t, buf.String(), "STATION,DATE,DEWP,MAX,MIN,SLP,TEMP,WDSP\n")
	assert.Contains(t, buf.String(), "X1,2010-01-01,")

	opts := table.DefaultCSVOptions()
	opts.Columns = builder.WeatherColumns
	opts.FilterColumn, opts.FilterValue = "STATION", "X1"
	got, err := table.ReadCSVFrom(&buf, opts)
	require.NoError(t, err)

	want, err := builder.Weather(50, builder.WithSeed(2), builder.WithMissing(0.1))
	require.NoError(t, err)
	require.Equal(t, want.Len(), got.Len())
	for i := range want.Rows {
		for j := range want.Columns {
			a, b := want.Rows[i][j], got.Rows[i][j]
			if math.IsNaN(a) {
				assert.True(t, math.IsNaN(b))
				continue
			}
			assert.Equal(t, a, b)
		}
	}
}

func TestErrorsAndPanics(t *testing.T) {
	_, err := builder.Xor(0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Chain(10, 1, 2, 0.5)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Chain(10, 3, 2, 1.5)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.Weather(0)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithFlip(-0.1) })
	assert.Panics(t, func() { builder.WithMissing(2) })
	assert.Panics(t, func() { builder.WithNoiseScale(-1) })
}

func TestWithRandSharesStream(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	a, err := builder.Xor(10, builder.WithRand(r))
	require.NoError(t, err)
	b, err := builder.Xor(10, builder.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows, b.Rows)
}
