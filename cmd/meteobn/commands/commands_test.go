package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/builder"
	"github.com/katalvlaran/meteobn/cmd/meteobn/commands"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeCSV(t *testing.T, days int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gsod.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, builder.WriteWeatherCSV(f, days, builder.WithSeed(8), builder.WithMissing(0.05, "SLP")))
	require.NoError(t, f.Close())

	return path
}

func TestDemo(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "demo", "--days", "200", "--bins", "3", "--out", dir, "--max-indegree", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo table:")
	assert.Contains(t, out, "Accuracy:")
	assert.Contains(t, out, "TEMP")
	assert.FileExists(t, filepath.Join(dir, "demo_input.csv"))
	assert.FileExists(t, filepath.Join(dir, "graph.dot"))
	assert.FileExists(t, filepath.Join(dir, "accuracy.txt"))
}

func TestDemo_BadMissing(t *testing.T) {
	_, err := execute(t, "demo", "--missing", "1.5", "--out", t.TempDir())
	assert.Error(t, err)
}

func TestRun_NoPlots(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "run", "-i", writeCSV(t, 150), "--bins", "3", "--score", "bic", "--out", dir, "--plots=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Synthetic rows:")
	assert.FileExists(t, filepath.Join(dir, "synthetic.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "TEMP_hist.png"))
}

func TestLearn_DOT(t *testing.T) {
	out, err := execute(t, "learn", "-i", writeCSV(t, 150), "--bins", "3", "--columns", "TEMP,MAX,MIN")
	require.NoError(t, err)
	assert.Contains(t, out, `digraph "meteobn" {`)
	assert.Contains(t, out, `"TEMP";`)
	assert.NotContains(t, out, `"SLP"`)
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "-i", writeCSV(t, 100))
	require.NoError(t, err)
	assert.Contains(t, out, "trimmed")
	assert.Contains(t, out, "correlation")
}

func TestConfigFileAndErrors(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "meteobn.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("structure:\n  score: nope\n"), 0o600))
	_, err := execute(t, "--config", cfg, "learn", "-i", writeCSV(t, 50))
	assert.Error(t, err)

	_, err = execute(t, "learn")
	assert.Error(t, err, "no input")

	_, err = execute(t, "learn", "-i", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
