package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meteobn/report"
)

func NewLearnCmd() *cobra.Command {
	v := viper.New()
	var (
		b       bindings
		dotFile string
	)

	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Learn the dependency graph and print it as DOT",
		Example: `  meteobn learn -i data.csv --score bic --max-indegree 2
  meteobn learn -i data.csv --dot graph.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd, v, b)
			if err != nil {
				return err
			}
			t, err := p.Load()
			if err != nil {
				return err
			}
			m, err := p.Learn(cmd.Context(), t)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dotFile != "" {
				f, err := os.Create(dotFile)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := report.WriteDOT(w, m.Network.Graph(), "meteobn"); err != nil {
				return err
			}
			ll, _, err := m.Network.LogLikelihood(m.Train)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "score %.4f, log-likelihood %.4f, %d iterations, converged %t\n",
				m.Search.Score, ll, m.Search.Iterations, m.Search.Converged)
			return nil
		},
	}

	b = commonFlags(cmd)
	learnFlags(cmd, b)
	cmd.Flags().StringVar(&dotFile, "dot", "", "write the DOT graph to this file instead of stdout")

	return cmd
}
