package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/meteobn/pipeline"
)

func NewDescribeCmd() *cobra.Command {
	v := viper.New()
	var b bindings

	cmd := &cobra.Command{
		Use:     "describe",
		Short:   "Print univariate statistics, distribution fits and correlations",
		Example: `  meteobn describe -i data.csv --columns TEMP,WDSP`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setup(cmd, v, b)
			if err != nil {
				return err
			}
			t, err := p.Load()
			if err != nil {
				return err
			}
			d, err := p.Describe(t)
			if err != nil {
				return err
			}
			return pipeline.WriteDescription(cmd.OutOrStdout(), d)
		},
	}

	b = commonFlags(cmd)

	return cmd
}
