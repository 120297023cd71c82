package describe

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/meteobn/table"
)

// tails is the padding, in bandwidths, added on both sides of the sample.
const tails = 3

// Density is a kernel density estimate sampled on a regular grid.
type Density struct {
	Bandwidth float64
	X, Y      []float64
}

// KDE estimates the density of xs with a Gaussian kernel and Scott's
// bandwidth h, evaluated at points evenly spaced over [min-3h, max+3h].
func KDE(xs []float64, points int) (*Density, error) {
	x := Clean(xs)
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFew, len(x))
	}
	if points < 2 {
		points = 2
	}

	kde := stats.KDE{
		Sample: stats.Sample{Xs: x},
		Kernel: stats.GaussianKernel,
	}
	kde.Bandwidth = stats.BandwidthScott(kde.Sample)
	lo, hi := kde.Sample.Bounds()
	if kde.Bandwidth == 0 {
		kde.Bandwidth = 1
	}
	lo, hi = lo-tails*kde.Bandwidth, hi+tails*kde.Bandwidth
	grid := vec.Linspace(lo, hi, points)

	return &Density{Bandwidth: kde.Bandwidth, X: grid, Y: vec.Map(kde.PDF, grid)}, nil
}

// Correlation returns the Pearson correlation matrix of t's columns over the
// rows where every column is observed.
func Correlation(t *table.Table) (*mat.SymDense, error) {
	complete, _, _ := t.Split()
	if complete.Len() < 2 {
		return nil, fmt.Errorf("%w: %d complete rows", ErrTooFew, complete.Len())
	}
	data := make([]float64, 0, complete.Len()*len(t.Columns))
	for _, r := range complete.Rows {
		data = append(data, r...)
	}
	x := mat.NewDense(complete.Len(), len(t.Columns), data)

	c := mat.NewSymDense(len(t.Columns), nil)
	stat.CorrelationMatrix(c, x, nil)

	return c, nil
}
