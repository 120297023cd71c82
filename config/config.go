// Package config loads the layered configuration of meteobn: defaults,
// then an optional YAML file, then METEOBN_* environment variables, then
// any flags bound to the same viper instance.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/meteobn/discretize"
	"github.com/katalvlaran/meteobn/inference"
	"github.com/katalvlaran/meteobn/score"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix prefixes environment overrides; "structure.max_indegree" is
// read from METEOBN_STRUCTURE_MAX_INDEGREE.
const EnvPrefix = "METEOBN"

// Config is the full run configuration, one section per pipeline concern.
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Discretize DiscretizeConfig `mapstructure:"discretize"`
	Structure  StructureConfig  `mapstructure:"structure"`
	Estimator  EstimatorConfig  `mapstructure:"estimator"`
	Inference  InferenceConfig  `mapstructure:"inference"`
	Sampling   SamplingConfig   `mapstructure:"sampling"`
	Impute     ImputeConfig     `mapstructure:"impute"`
	Output     OutputConfig     `mapstructure:"output"`
	Log        LogConfig        `mapstructure:"log"`
}

// InputConfig selects the CSV file, its columns and the rows to keep.
type InputConfig struct {
	Path          string    `mapstructure:"path"`
	Columns       []string  `mapstructure:"columns"`
	FilterColumn  string    `mapstructure:"filter_column"`
	FilterValue   string    `mapstructure:"filter_value"`
	MissingTokens []string  `mapstructure:"missing_tokens"`
	MissingValues []float64 `mapstructure:"missing_values"`
	Offset        int       `mapstructure:"offset"`
	Limit         int       `mapstructure:"limit"`
}

// DiscretizeConfig sets the bin count per column and the binning strategy.
type DiscretizeConfig struct {
	Bins       int            `mapstructure:"bins"`
	ColumnBins map[string]int `mapstructure:"column_bins"`
	Strategy   string         `mapstructure:"strategy"`
}

// StructureConfig drives the hill-climbing structure search.
type StructureConfig struct {
	Score                string  `mapstructure:"score"`
	EquivalentSampleSize float64 `mapstructure:"equivalent_sample_size"`
	MaxIndegree          int     `mapstructure:"max_indegree"`
	MaxIterations        int     `mapstructure:"max_iterations"`
	Epsilon              float64 `mapstructure:"epsilon"`
	TabuLength           int     `mapstructure:"tabu_length"`
	Workers              int     `mapstructure:"workers"`
}

// EstimatorConfig holds the Laplace pseudo-count used when fitting CPTs.
type EstimatorConfig struct {
	PseudoCount float64 `mapstructure:"pseudo_count"`
}

// InferenceConfig selects the elimination ordering for MAP queries.
type InferenceConfig struct {
	Ordering string `mapstructure:"ordering"`
	Workers  int    `mapstructure:"workers"`
}

// SamplingConfig controls forward sampling of synthetic rows.
type SamplingConfig struct {
	Count   int   `mapstructure:"count"` // 0 = as many rows as the training table
	Seed    int64 `mapstructure:"seed"`
	Workers int   `mapstructure:"workers"`
}

// ImputeConfig toggles imputation and optionally restricts it to one column.
type ImputeConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Target  string `mapstructure:"target"` // "" = every row with a missing cell
}

// OutputConfig names the output directory and whether plots are written.
type OutputConfig struct {
	Dir   string `mapstructure:"dir"`
	Plots bool   `mapstructure:"plots"`
}

// LogConfig sets the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Columns:       []string{"DEWP", "MAX", "MIN", "SLP", "TEMP", "WDSP"},
			FilterColumn:  "STATION",
			MissingTokens: []string{"", "NA", "NaN", "nan", "null"},
			MissingValues: []float64{9999.9},
		},
		Discretize: DiscretizeConfig{Bins: 4, Strategy: "kmeans"},
		Structure: StructureConfig{
			Score:                "k2",
			EquivalentSampleSize: 10,
			MaxIterations:        1_000_000,
			Epsilon:              1e-4,
			TabuLength:           100,
			Workers:              1,
		},
		Estimator: EstimatorConfig{PseudoCount: 1},
		Inference: InferenceConfig{Ordering: "min-degree", Workers: 1},
		Sampling:  SamplingConfig{Seed: 1, Workers: 1},
		Impute:    ImputeConfig{Enabled: true},
		Output:    OutputConfig{Dir: "out", Plots: true},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration into v (a fresh instance when nil). path may be
// empty; a missing file at an explicit path is an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("input.path", d.Input.Path)
	v.SetDefault("input.columns", d.Input.Columns)
	v.SetDefault("input.filter_column", d.Input.FilterColumn)
	v.SetDefault("input.filter_value", d.Input.FilterValue)
	v.SetDefault("input.missing_tokens", d.Input.MissingTokens)
	v.SetDefault("input.missing_values", d.Input.MissingValues)
	v.SetDefault("input.offset", d.Input.Offset)
	v.SetDefault("input.limit", d.Input.Limit)

	v.SetDefault("discretize.bins", d.Discretize.Bins)
	v.SetDefault("discretize.column_bins", map[string]int{})
	v.SetDefault("discretize.strategy", d.Discretize.Strategy)

	v.SetDefault("structure.score", d.Structure.Score)
	v.SetDefault("structure.equivalent_sample_size", d.Structure.EquivalentSampleSize)
	v.SetDefault("structure.max_indegree", d.Structure.MaxIndegree)
	v.SetDefault("structure.max_iterations", d.Structure.MaxIterations)
	v.SetDefault("structure.epsilon", d.Structure.Epsilon)
	v.SetDefault("structure.tabu_length", d.Structure.TabuLength)
	v.SetDefault("structure.workers", d.Structure.Workers)

	v.SetDefault("estimator.pseudo_count", d.Estimator.PseudoCount)
	v.SetDefault("inference.ordering", d.Inference.Ordering)
	v.SetDefault("inference.workers", d.Inference.Workers)
	v.SetDefault("sampling.count", d.Sampling.Count)
	v.SetDefault("sampling.seed", d.Sampling.Seed)
	v.SetDefault("sampling.workers", d.Sampling.Workers)
	v.SetDefault("impute.enabled", d.Impute.Enabled)
	v.SetDefault("impute.target", d.Impute.Target)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.plots", d.Output.Plots)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks ranges and that every named algorithm exists.
func (c *Config) Validate() error {
	if len(c.Input.Columns) == 0 {
		return fmt.Errorf("%w: input.columns is empty", ErrInvalid)
	}
	if c.Input.Offset < 0 || c.Input.Limit < 0 {
		return fmt.Errorf("%w: input.offset and input.limit must be >= 0", ErrInvalid)
	}
	if c.Discretize.Bins < 1 {
		return fmt.Errorf("%w: discretize.bins %d", ErrInvalid, c.Discretize.Bins)
	}
	for col, k := range c.Discretize.ColumnBins {
		if k < 1 {
			return fmt.Errorf("%w: discretize.column_bins.%s %d", ErrInvalid, col, k)
		}
	}
	if _, err := discretize.ParseStrategy(c.Discretize.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := score.ByName(c.Structure.Score, c.Structure.EquivalentSampleSize); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	s := c.Structure
	if s.MaxIndegree < 0 || s.MaxIterations < 0 || s.TabuLength < 0 || s.Workers < 1 || !(s.Epsilon > 0) {
		return fmt.Errorf("%w: structure %+v", ErrInvalid, s)
	}
	if c.Estimator.PseudoCount < 0 {
		return fmt.Errorf("%w: estimator.pseudo_count %g", ErrInvalid, c.Estimator.PseudoCount)
	}
	if _, err := inference.ParseHeuristic(c.Inference.Ordering); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Inference.Workers < 1 {
		return fmt.Errorf("%w: inference.workers %d", ErrInvalid, c.Inference.Workers)
	}
	if c.Sampling.Count < 0 || c.Sampling.Workers < 1 {
		return fmt.Errorf("%w: sampling %+v", ErrInvalid, c.Sampling)
	}
	if c.Impute.Target != "" && indexOf(c.Input.Columns, c.Impute.Target) < 0 {
		return fmt.Errorf("%w: impute.target %q is not an input column", ErrInvalid, c.Impute.Target)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

func indexOf(xs []string, x string) int {
	for i, s := range xs {
		if s == x {
			return i
		}
	}

	return -1
}
