package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/describe"
	"github.com/katalvlaran/meteobn/evaluate"
)

// WriteAccuracy prints one row per variable and one column per metric.
func WriteAccuracy(w io.Writer, r *evaluate.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "variable\trows\t%s\t\n", strings.Join(r.Metrics, "\t"))
	for _, s := range r.Scores {
		cells := make([]string, len(r.Metrics))
		for i, m := range r.Metrics {
			cells[i] = strconv.FormatFloat(s.Values[m], 'f', 4, 64)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", s.Variable, s.Rows, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// WriteSummaries prints the univariate statistics, one row per column.
func WriteSummaries(w io.Writer, ss []*describe.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "column\tn\tmean\t±95%\tvar\tvar 95% CI\tstd\tstd 95% CI\tmedian\ttrimmed\tMAD\t")
	for _, s := range ss {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t(%.3f; %.3f)\t%.3f\t(%.3f; %.3f)\t%.3f\t%.3f\t%.3f\t\n",
			s.Name, s.N, s.Mean, s.MeanHalfWidth,
			s.Variance, s.VarianceCI.Lo, s.VarianceCI.Hi,
			s.Std, s.StdCI.Lo, s.StdCI.Hi,
			s.Median, s.TrimmedMean, s.MAD)
	}

	return tw.Flush()
}

// WriteDOT renders g as a Graphviz digraph. Vertices and edges appear in
// sorted order, so output is stable.
func WriteDOT(w io.Writer, g *core.Graph, name string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", strconv.Quote(name))
	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "  %s;\n", strconv.Quote(v))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s -> %s;\n", strconv.Quote(e.From), strconv.Quote(e.To))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())

	return err
}
