package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/meteobn/describe"
	"github.com/katalvlaran/meteobn/report"
	"github.com/katalvlaran/meteobn/table"
)

// Output file names inside output.dir.
const (
	GraphFile     = "graph.dot"
	AccuracyFile  = "accuracy.txt"
	SummaryFile   = "summary.txt"
	SyntheticFile = "synthetic.csv"
	ImputedFile   = "imputed.csv"
)

func (p *Pipeline) outputs(res *Result) error {
	dir := p.cfg.Output.Dir

	return p.stage("outputs", func(log *logrus.Entry) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		write := func(name string, fn func(io.Writer) error) error {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := fn(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			res.Files = append(res.Files, path)
			return nil
		}

		if err := write(GraphFile, func(w io.Writer) error {
			return report.WriteDOT(w, res.Network.Graph(), "meteobn")
		}); err != nil {
			return err
		}
		if err := write(AccuracyFile, func(w io.Writer) error {
			return report.WriteAccuracy(w, res.Accuracy)
		}); err != nil {
			return err
		}
		if err := write(SummaryFile, func(w io.Writer) error {
			ss, err := describe.Columns(res.Complete)
			if err != nil {
				return err
			}
			return report.WriteSummaries(w, ss)
		}); err != nil {
			return err
		}
		if err := write(SyntheticFile, func(w io.Writer) error {
			return table.WriteCSV(w, res.SyntheticValues)
		}); err != nil {
			return err
		}
		if res.Imputed != nil {
			if err := write(ImputedFile, func(w io.Writer) error {
				return table.WriteCSV(w, res.Imputed)
			}); err != nil {
				return err
			}
		}

		if p.cfg.Output.Plots {
			paths, err := report.Histograms(dir, res.Train, res.Synthetic, func(c string, bin int) string {
				v, err := res.Map.Value(c, bin)
				if err != nil {
					return strconv.Itoa(bin)
				}
				return strconv.FormatFloat(v, 'f', 1, 64)
			})
			if err != nil {
				return err
			}
			res.Files = append(res.Files, paths...)
		}

		log.WithFields(logrus.Fields{"dir": dir, "files": len(res.Files)}).Info("outputs written")
		return nil
	})
}
