package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/describe"
	"github.com/katalvlaran/meteobn/evaluate"
	"github.com/katalvlaran/meteobn/report"
	"github.com/katalvlaran/meteobn/table"
)

func TestWriteDOT(t *testing.T) {
	g, err := core.FromEdges([]string{"WDSP"}, []core.Edge{{From: "DEWP", To: "TEMP"}})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteDOT(&buf, g, "weather"))
	assert.Equal(t, `digraph "weather" {
  "DEWP";
  "TEMP";
  "WDSP";
  "DEWP" -> "TEMP";
}
`, buf.String())
}

func TestWriteAccuracy(t *testing.T) {
	r := &evaluate.Report{
		Metrics: []string{"accuracy", "mse"},
		Scores: []evaluate.Score{
			{Variable: "SLP", Rows: 10, Values: map[string]float64{"accuracy": 0.75, "mse": 0.5}},
			{Variable: "TEMP", Rows: 9, Values: map[string]float64{"accuracy": 1, "mse": 0}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteAccuracy(&buf, r))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "accuracy")
	assert.Contains(t, lines[1], "0.7500")
	assert.Equal(t, []string{"TEMP", "9", "1.0000", "0.0000"}, strings.Fields(lines[2]))
}

func TestWriteSummaries(t *testing.T) {
	s, err := describe.Summarize("TEMP", []float64{1, 2, 3, 4})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, report.WriteSummaries(&buf, []*describe.Summary{s}))
	assert.Contains(t, buf.String(), "TEMP")
	assert.Contains(t, buf.String(), "2.500")
}

func TestHistograms(t *testing.T) {
	orig, err := table.NewDiscrete([]string{"A", "B"}, []int{2, 3}, [][]int{{0, 1}, {1, 2}, {1, 0}})
	require.NoError(t, err)
	synth, err := table.NewDiscrete([]string{"A"}, []int{2}, [][]int{{0}, {0}, {1}})
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := report.Histograms(dir, orig, synth, nil)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "A_hist.png")}, paths)
	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	err = report.ComparativeHistogram("X", []float64{1}, []float64{0.5, 0.5}, nil, filepath.Join(dir, "x.png"))
	assert.Error(t, err)
}
