// Package commands holds the cobra commands of the meteobn CLI.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meteobn/config"
	"github.com/katalvlaran/meteobn/pipeline"
)

// Version is reported by --version.
var Version = "0.1.0"

// NewRootCmd returns the meteobn root command with every subcommand.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "meteobn",
		Short: "Bayesian-network analysis of station weather",
		Long: `meteobn learns a Bayesian network over discretized daily weather
measurements, evaluates how well each variable is reconstructed from the
others, samples a synthetic table and imputes missing values.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewLearnCmd())
	rootCmd.AddCommand(NewDescribeCmd())
	rootCmd.AddCommand(NewDemoCmd())

	return rootCmd
}

// bindings maps a command's flag names to configuration keys.
type bindings map[string]string

// setup loads the configuration for cmd (file, env, then the bound flags)
// and returns a pipeline logging to the command's stderr.
func setup(cmd *cobra.Command, v *viper.Viper, b bindings) (*pipeline.Pipeline, error) {
	for flag, key := range b {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, err
		}
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return pipeline.New(cfg, logger)
}

// commonFlags registers the flags shared by the commands that read a table.
func commonFlags(cmd *cobra.Command) bindings {
	cmd.Flags().StringP("input", "i", "", "input CSV file")
	cmd.Flags().String("station", "", "keep only rows of this station ID")
	cmd.Flags().StringSlice("columns", nil, "numeric columns to analyse")

	return bindings{
		"input":   "input.path",
		"station": "input.filter_value",
		"columns": "input.columns",
	}
}

// learnFlags registers discretization and structure-search flags.
func learnFlags(cmd *cobra.Command, b bindings) {
	cmd.Flags().Int("bins", 4, "bins per variable")
	cmd.Flags().String("strategy", "kmeans", "binning strategy (kmeans, quantile, uniform)")
	cmd.Flags().String("score", "k2", "structure score (k2, bdeu, bic)")
	cmd.Flags().Int("max-indegree", 0, "maximum parents per variable (0 = unbounded)")
	cmd.Flags().Int("workers", 1, "goroutines scoring candidate moves")

	b["bins"] = "discretize.bins"
	b["strategy"] = "discretize.strategy"
	b["score"] = "structure.score"
	b["max-indegree"] = "structure.max_indegree"
	b["workers"] = "structure.workers"
}
