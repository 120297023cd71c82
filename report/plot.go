package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/meteobn/table"
)

// Chart sizes.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = vg.Length(14)
)

// ComparativeHistogram draws the bin frequencies of one variable in the
// original and the synthetic table side by side and saves the chart to path
// (format from the extension). labels name the bins on the x axis.
func ComparativeHistogram(variable string, original, synthetic []float64, labels []string, path string) error {
	if len(original) != len(synthetic) {
		return fmt.Errorf("report: %q has %d original and %d synthetic bins", variable, len(original), len(synthetic))
	}

	p := plot.New()
	p.Title.Text = variable
	p.X.Label.Text = variable
	p.Y.Label.Text = "Probability"

	orig, err := plotter.NewBarChart(plotter.Values(original), barWidth)
	if err != nil {
		return fmt.Errorf("report: %q: %w", variable, err)
	}
	orig.Color = plotutil.Color(0)
	orig.Offset = -barWidth / 2

	synth, err := plotter.NewBarChart(plotter.Values(synthetic), barWidth)
	if err != nil {
		return fmt.Errorf("report: %q: %w", variable, err)
	}
	synth.Color = plotutil.Color(1)
	synth.Offset = barWidth / 2

	p.Add(orig, synth)
	p.Legend.Add("Original data", orig)
	p.Legend.Add("Synthetic data", synth)
	p.Legend.Top = true
	if len(labels) == len(original) {
		p.NominalX(labels...)
	}

	return p.Save(chartWidth, chartHeight, path)
}

// Histograms writes one PNG per shared column of original and synthetic
// into dir and returns the file paths. labels, if non-nil, supplies the bin
// labels of a column (e.g. representative values).
func Histograms(dir string, original, synthetic *table.Discrete, labels func(column string, bin int) string) ([]string, error) {
	var paths []string
	for _, c := range original.Columns {
		if synthetic.Index(c) < 0 {
			continue
		}
		fo, err := original.Frequencies(c)
		if err != nil {
			return nil, err
		}
		fs, err := synthetic.Frequencies(c)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(fo))
		for i := range names {
			if labels != nil {
				names[i] = labels(c, i)
			} else {
				names[i] = strconv.Itoa(i)
			}
		}
		path := filepath.Join(dir, c+"_hist.png")
		if err := ComparativeHistogram(c, fo, fs, names, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
