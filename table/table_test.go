package table_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/table"
)

const gsod = `STATION,DATE,SLP,DEWP,TEMP,WDSP
26063099999,2019-01-01,1012.5,20.1,25.3,4.1
26063099999,2019-01-02,9999.9,21.0,26.0,3.2
11111099999,2019-01-02,1000.0,1.0,2.0,3.0
26063099999,2019-01-03,1010.0,NA,24.0,5.0
26063099999,2019-01-04,1011.0,19.5,23.5,2.5
`

func TestReadCSVFrom_FilterAndMissing(t *testing.T) {
	opts := table.DefaultCSVOptions()
	opts.Columns = []string{"SLP", "DEWP", "TEMP", "WDSP"}
	opts.FilterColumn = "STATION"
	opts.FilterValue = "26063099999"

	tb, err := table.ReadCSVFrom(strings.NewReader(gsod), opts)
	require.NoError(t, err)
	require.Equal(t, 4, tb.Len())
	assert.Equal(t, []string{"SLP", "DEWP", "TEMP", "WDSP"}, tb.Columns)
	assert.True(t, math.IsNaN(tb.Rows[1][0]), "9999.9 sentinel")
	assert.True(t, math.IsNaN(tb.Rows[2][1]), "NA token")

	complete, missing, idx := tb.Split()
	assert.Equal(t, 2, complete.Len())
	assert.Equal(t, 2, missing.Len())
	assert.Equal(t, []int{1, 2}, idx)
}

func TestReadCSVFrom_Window(t *testing.T) {
	opts := table.DefaultCSVOptions()
	opts.Columns = []string{"TEMP"}
	opts.Offset = 1
	opts.Limit = 2

	tb, err := table.ReadCSVFrom(strings.NewReader(gsod), opts)
	require.NoError(t, err)
	col, err := tb.Column("TEMP")
	require.NoError(t, err)
	assert.Equal(t, []float64{26.0, 2.0}, col)
}

func TestReadCSVFrom_Errors(t *testing.T) {
	opts := table.DefaultCSVOptions()
	opts.Columns = []string{"PRCP"}
	_, err := table.ReadCSVFrom(strings.NewReader(gsod), opts)
	assert.ErrorIs(t, err, table.ErrMissingColumn)

	opts = table.DefaultCSVOptions()
	opts.FilterColumn = "STATION"
	_, err = table.ReadCSVFrom(strings.NewReader(gsod), opts)
	assert.ErrorIs(t, err, table.ErrEmpty, "no station matches the empty filter value")

	opts = table.DefaultCSVOptions()
	_, err = table.ReadCSVFrom(strings.NewReader(gsod), opts)
	assert.ErrorIs(t, err, table.ErrMalformedRow, "DATE is not numeric")

	_, err = table.ReadCSVFrom(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, table.ErrEmpty)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tb, err := table.New([]string{"A", "B"}, [][]float64{{1.5, math.NaN()}, {2, 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tb))
	assert.Equal(t, "A,B\n1.5,NA\n2,3\n", buf.String())

	back, err := table.ReadCSVFrom(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, back.Rows[0][0])
	assert.True(t, math.IsNaN(back.Rows[0][1]))
}

func TestNewAndSelect(t *testing.T) {
	_, err := table.New([]string{"A", "A"}, nil)
	assert.ErrorIs(t, err, table.ErrDuplicate)
	_, err = table.New([]string{"A"}, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, table.ErrShape)

	tb, err := table.New([]string{"A", "B", "C"}, [][]float64{{1, 2, 3}})
	require.NoError(t, err)
	sel, err := tb.Select("C", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 1}}, sel.Rows)
	_, err = tb.Select("Z")
	assert.ErrorIs(t, err, table.ErrMissingColumn)

	cp := tb.Clone()
	cp.Rows[0][0] = 42
	assert.Equal(t, 1.0, tb.Rows[0][0])
}

func TestDiscrete(t *testing.T) {
	_, err := table.NewDiscrete([]string{"A"}, []int{2}, [][]int{{2}})
	assert.ErrorIs(t, err, table.ErrBinRange)
	_, err = table.NewDiscrete([]string{"A"}, []int{2, 3}, nil)
	assert.ErrorIs(t, err, table.ErrShape)

	d, err := table.NewDiscrete([]string{"A", "B"}, []int{2, 3}, [][]int{{0, 2}, {1, table.Missing}, {1, 0}})
	require.NoError(t, err)

	card, err := d.Card("B")
	require.NoError(t, err)
	assert.Equal(t, 3, card)

	freq, err := d.Frequencies("B")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0.5}, freq, 1e-12)
	assert.Equal(t, []string{"B"}, d.MissingColumns(1))

	d.Clamped["A"] = 2
	cp := d.Clone()
	cp.Rows[0][0] = 1
	cp.Clamped["B"] = 1
	assert.Equal(t, 0, d.Rows[0][0])
	assert.Equal(t, []string{"A"}, d.ClampedColumns())
	assert.Equal(t, []string{"A", "B"}, cp.ClampedColumns())

	var buf bytes.Buffer
	require.NoError(t, table.WriteDiscreteCSV(&buf, d))
	assert.Equal(t, "A,B\n0,2\n1,NA\n1,0\n", buf.String())
}
