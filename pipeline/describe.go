package pipeline

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/meteobn/describe"
	"github.com/katalvlaran/meteobn/report"
	"github.com/katalvlaran/meteobn/table"
)

// densityPoints is the KDE grid size per column.
const densityPoints = 200

// ColumnFit holds the parametric and kernel fits of one column. Fits that do
// not apply to the column (gamma on non-positive data, Poisson on negative
// data) are nil.
type ColumnFit struct {
	Column       string
	Normal       distuv.Normal
	GammaMoments *describe.GammaFit
	GammaMLE     *describe.GammaFit
	PoissonRate  *float64
	Density      *describe.Density
}

// Description is the univariate analysis of a table.
type Description struct {
	Summaries   []*describe.Summary
	Fits        []ColumnFit
	Correlation *mat.SymDense // nil with fewer than two complete rows
}

// Describe summarizes and fits every configured column of t.
func (p *Pipeline) Describe(t *table.Table) (*Description, error) {
	out := &Description{}
	err := p.stage("describe", func(log *logrus.Entry) error {
		sel, err := t.Select(p.cfg.Input.Columns...)
		if err != nil {
			return err
		}
		if out.Summaries, err = describe.Columns(sel); err != nil {
			return err
		}
		for _, c := range sel.Columns {
			xs, _ := sel.Column(c)
			f, err := fitColumn(c, xs)
			if err != nil {
				return err
			}
			if f.GammaMLE == nil {
				log.WithField("column", c).Debug("gamma fit skipped")
			}
			out.Fits = append(out.Fits, f)
		}
		out.Correlation, err = describe.Correlation(sel)
		if errors.Is(err, describe.ErrTooFew) {
			log.Warn("too few complete rows for a correlation matrix")
			err = nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func fitColumn(c string, xs []float64) (ColumnFit, error) {
	f := ColumnFit{Column: c}
	var err error
	if f.Normal, err = describe.NormalFit(xs); err != nil {
		return f, fmt.Errorf("%q: %w", c, err)
	}
	if f.Density, err = describe.KDE(xs, densityPoints); err != nil {
		return f, fmt.Errorf("%q: %w", c, err)
	}
	if g, err := describe.GammaMoments(xs); err == nil {
		f.GammaMoments = &g
	}
	if g, err := describe.GammaMLE(xs); err == nil {
		f.GammaMLE = &g
	}
	if rate, err := describe.PoissonMLE(xs); err == nil {
		f.PoissonRate = &rate
	}

	return f, nil
}

// WriteDescription prints summaries, fits and the correlation matrix.
func WriteDescription(w io.Writer, d *Description) error {
	if err := report.WriteSummaries(w, d.Summaries); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tnormal μ\tnormal σ\tgamma α (MoM)\tgamma β (MoM)\tgamma α (MLE)\tgamma β (MLE)\tpoisson λ\tKDE h\t")
	for _, f := range d.Fits {
		am, bm := gammaCells(f.GammaMoments)
		al, bl := gammaCells(f.GammaMLE)
		lambda := math.NaN()
		if f.PoissonRate != nil {
			lambda = *f.PoissonRate
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			f.Column, f.Normal.Mu, f.Normal.Sigma, am, bm, al, bl, lambda, f.Density.Bandwidth)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if d.Correlation != nil {
		fmt.Fprintf(w, "\ncorrelation\n%.3f\n", mat.Formatted(d.Correlation, mat.Squeeze()))
	}

	return nil
}

func gammaCells(g *describe.GammaFit) (float64, float64) {
	if g == nil {
		return math.NaN(), math.NaN()
	}

	return g.Alpha, g.Beta
}
