package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meteobn/pipeline"
	"github.com/katalvlaran/meteobn/report"
)

func NewRunCmd() *cobra.Command {
	v := viper.New()
	var b bindings

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline on a CSV table",
		Long: `Load the table, learn and fit a Bayesian network, evaluate it, sample a
synthetic table, impute missing values and write every output.`,
		Example: `  # Default configuration, one station
  meteobn run --input data_spb.csv --station 26063099999

  # BDeu score, 5 bins, outputs in ./out
  meteobn run -i data.csv --score bdeu --bins 5 --out out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd, v, b)
			if err != nil {
				return err
			}
			t, err := p.Load()
			if err != nil {
				return err
			}
			res, err := p.Run(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printResult(cmd, res)
		},
	}

	b = commonFlags(cmd)
	learnFlags(cmd, b)
	cmd.Flags().Int64("seed", 1, "sampling seed")
	cmd.Flags().Int("samples", 0, "synthetic rows (0 = as many as the training table)")
	cmd.Flags().StringP("out", "o", "out", "output directory (empty = write nothing)")
	cmd.Flags().Bool("plots", true, "write comparative histograms")
	b["seed"] = "sampling.seed"
	b["samples"] = "sampling.count"
	b["out"] = "output.dir"
	b["plots"] = "output.plots"

	return cmd
}

func printResult(cmd *cobra.Command, res *pipeline.Result) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Network: %d edges, score %.4f (%d iterations)\n",
		len(res.Network.Edges()), res.Search.Score, res.Search.Iterations)
	for _, e := range res.Network.Edges() {
		fmt.Fprintf(w, "  %s -> %s\n", e.From, e.To)
	}

	fmt.Fprintln(w, "\nAccuracy:")
	if err := report.WriteAccuracy(w, res.Accuracy); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSynthetic rows: %d\n", res.Synthetic.Len())
	fmt.Fprintf(w, "Imputed cells: %d\n", len(res.ImputedCells))
	if len(res.Files) > 0 {
		fmt.Fprintln(w, "\nFiles:")
		for _, f := range res.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}

	return nil
}
