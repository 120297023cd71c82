package evaluate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/inference"
	"github.com/katalvlaran/meteobn/table"
)

// Score holds the metrics of one variable.
type Score struct {
	Variable string
	Rows     int                // rows where the variable was observed
	Values   map[string]float64 // metric name → value
}

// Report is the per-variable reconstruction quality of a network.
type Report struct {
	Metrics []string
	Scores  []Score
}

// Lookup returns one metric of one variable.
func (r *Report) Lookup(variable, metric string) (float64, bool) {
	for _, s := range r.Scores {
		if s.Variable == variable {
			v, ok := s.Values[metric]
			return v, ok
		}
	}

	return 0, false
}

// Evaluate scores MAP reconstruction of every network variable on d.
//
// Errors: ErrMissingVariable, ErrBadOption, inference errors (wrapped with
// the variable and row), value mapper errors, ctx.Err().
func Evaluate(e *inference.Engine, d *table.Discrete, opts ...Option) (*Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	vars, cols, err := locate(e.Network(), d)
	if err != nil {
		return nil, err
	}

	scores := make([]Score, len(vars))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, v := range vars {
		eg.Go(func() error {
			truth, pred, err := reconstruct(ctx, e, d, vars, cols, v, o.Values)
			if err != nil {
				return err
			}
			s := Score{Variable: v, Rows: len(truth), Values: make(map[string]float64, len(o.Metrics))}
			for _, m := range o.Metrics {
				s.Values[m.Name()] = m.Score(truth, pred)
			}
			scores[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, len(o.Metrics))
	for i, m := range o.Metrics {
		names[i] = m.Name()
	}

	return &Report{Metrics: names, Scores: scores}, nil
}

// reconstruct predicts target on every row where it is observed.
func reconstruct(ctx context.Context, e *inference.Engine, d *table.Discrete,
	vars []string, cols []int, target string, mapper ValueMapper) ([]float64, []float64, error) {
	ti := d.Index(target)
	var truth, pred []float64
	for r, row := range d.Rows {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if row[ti] == table.Missing {
			continue
		}
		evidence := make(bayesnet.Assignment, len(vars)-1)
		for k, v := range vars {
			if v != target && row[cols[k]] != table.Missing {
				evidence[v] = row[cols[k]]
			}
		}
		got, err := e.MAP([]string{target}, evidence)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluate: %s row %d: %w", target, r, err)
		}

		tv, pv := float64(row[ti]), float64(got[target])
		if mapper != nil {
			if tv, err = mapper(target, row[ti]); err != nil {
				return nil, nil, err
			}
			if pv, err = mapper(target, got[target]); err != nil {
				return nil, nil, err
			}
		}
		truth = append(truth, tv)
		pred = append(pred, pv)
	}

	return truth, pred, nil
}

// locate maps every network variable to its column in d.
func locate(net *bayesnet.Network, d *table.Discrete) ([]string, []int, error) {
	vars := net.Variables()
	cols := make([]int, len(vars))
	for k, v := range vars {
		if cols[k] = d.Index(v); cols[k] < 0 {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingVariable, v)
		}
		card, _ := net.Card(v)
		if d.Cards[cols[k]] != card {
			return nil, nil, fmt.Errorf("%w: %q has %d bins in the table, %d in the network",
				ErrMissingVariable, v, d.Cards[cols[k]], card)
		}
	}

	return vars, cols, nil
}
