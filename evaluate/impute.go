package evaluate

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/discretize"
	"github.com/katalvlaran/meteobn/inference"
	"github.com/katalvlaran/meteobn/table"
)

// Cell addresses one imputed value.
type Cell struct {
	Row    int
	Column string
}

// Impute returns a copy of d where every missing network cell is filled with
// the joint MAP of the row's missing variables given its observed ones.
// Cells lists what was filled, in row then column order. Columns that are
// not network variables are left as they are.
func Impute(e *inference.Engine, d *table.Discrete, opts ...Option) (*table.Discrete, []Cell, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	vars, cols, err := locate(e.Network(), d)
	if err != nil {
		return nil, nil, err
	}

	out := d.Clone()
	filled := make([][]Cell, len(d.Rows))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for r := range out.Rows {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := out.Rows[r]
			var targets []string
			evidence := make(bayesnet.Assignment, len(vars))
			for k, v := range vars {
				if row[cols[k]] == table.Missing {
					targets = append(targets, v)
				} else {
					evidence[v] = row[cols[k]]
				}
			}
			if len(targets) == 0 {
				return nil
			}
			got, err := e.MAP(targets, evidence)
			if err != nil {
				return fmt.Errorf("evaluate: impute row %d: %w", r, err)
			}
			for k, v := range vars {
				if row[cols[k]] == table.Missing {
					row[cols[k]] = got[v]
					filled[r] = append(filled[r], Cell{Row: r, Column: v})
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var cells []Cell
	for _, fs := range filled {
		cells = append(cells, fs...)
	}

	return out, cells, nil
}

// ImputeValues imputes a table in original units: t is discretized with m,
// imputed, and every filled cell receives its bin's representative value.
// Observed cells keep their original values.
func ImputeValues(e *inference.Engine, t *table.Table, m *discretize.Map, opts ...Option) (*table.Table, []Cell, error) {
	d, err := m.Transform(t)
	if err != nil {
		return nil, nil, err
	}
	filled, cells, err := Impute(e, d, opts...)
	if err != nil {
		return nil, nil, err
	}

	out := t.Clone()
	for _, c := range cells {
		j := d.Index(c.Column)
		v, err := m.Value(c.Column, filled.Rows[c.Row][j])
		if err != nil {
			return nil, nil, err
		}
		if math.IsNaN(v) {
			return nil, nil, fmt.Errorf("evaluate: %q row %d left unfilled", c.Column, c.Row)
		}
		out.Rows[c.Row][j] = v
	}

	return out, cells, nil
}
