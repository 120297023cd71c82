package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), withEmptyColumnBins(c))
	assert.Equal(t, 4, c.Discretize.Bins)
	assert.Equal(t, "k2", c.Structure.Score)
	assert.Equal(t, []float64{9999.9}, c.Input.MissingValues)
}

// withEmptyColumnBins normalises the map viper materialises from its default.
func withEmptyColumnBins(c *config.Config) *config.Config {
	if len(c.Discretize.ColumnBins) == 0 {
		c.Discretize.ColumnBins = nil
	}
	return c
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meteobn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input:
  path: data/data_spb.csv
  filter_value: "26063099999"
discretize:
  bins: 5
  column_bins:
    WDSP: 3
structure:
  score: bdeu
  max_indegree: 2
impute:
  target: SLP
log:
  format: json
`), 0o600))
	t.Setenv("METEOBN_STRUCTURE_WORKERS", "4")

	c, err := config.Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "data/data_spb.csv", c.Input.Path)
	assert.Equal(t, "26063099999", c.Input.FilterValue)
	assert.Equal(t, 5, c.Discretize.Bins)
	assert.Equal(t, map[string]int{"wdsp": 3}, lowerKeys(c.Discretize.ColumnBins))
	assert.Equal(t, "bdeu", c.Structure.Score)
	assert.Equal(t, 2, c.Structure.MaxIndegree)
	assert.Equal(t, 4, c.Structure.Workers)
	assert.Equal(t, "SLP", c.Impute.Target)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, 100, c.Structure.TabuLength, "untouched keys keep defaults")
}

// viper lower-cases map keys read from files.
func lowerKeys(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(bytes.ToLower([]byte(k)))] = v
	}
	return out
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	t.Setenv("METEOBN_STRUCTURE_SCORE", "aic")
	_, err = config.Load(nil, "")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"bins":     func(c *config.Config) { c.Discretize.Bins = 0 },
		"strategy": func(c *config.Config) { c.Discretize.Strategy = "median" },
		"workers":  func(c *config.Config) { c.Structure.Workers = 0 },
		"epsilon":  func(c *config.Config) { c.Structure.Epsilon = 0 },
		"ordering": func(c *config.Config) { c.Inference.Ordering = "random" },
		"target":   func(c *config.Config) { c.Impute.Target = "RAIN" },
		"format":   func(c *config.Config) { c.Log.Format = "xml" },
		"columns":  func(c *config.Config) { c.Input.Columns = nil },
		"pseudo":   func(c *config.Config) { c.Estimator.PseudoCount = -1 },
	}
	for name, mutate := range cases {
		c := config.Default()
		mutate(c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalid, name)
	}
	assert.NoError(t, config.Default().Validate())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("stage", "learn").Info("done")
	assert.Contains(t, buf.String(), `"stage":"learn"`)

	_, err = config.NewLogger(config.LogConfig{Level: "loud"}, &buf)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
