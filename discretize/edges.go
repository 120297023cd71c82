package discretize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// minBinWidth merges edges closer than this.
const minBinWidth = 1e-8

// learnEdges returns increasing edges for the sorted, NaN-free sample xs.
func learnEdges(xs []float64, k int, o Options) []float64 {
	lo, hi := floats.Min(xs), floats.Max(xs)
	if hi-lo < minBinWidth {
		return []float64{lo - 0.5, hi + 0.5}
	}

	var edges []float64
	switch o.Strategy {
	case Uniform:
		edges = floats.Span(make([]float64, k+1), lo, hi)
	case Quantile:
		edges = make([]float64, k+1)
		edges[0], edges[k] = lo, hi
		for i := 1; i < k; i++ {
			edges[i] = stat.Quantile(float64(i)/float64(k), stat.LinInterp, xs, nil)
		}
	default:
		edges = kmeansEdges(xs, k, o.MaxIter)
	}

	return compact(edges, hi)
}

// kmeansEdges runs 1-D Lloyd iterations from the equal-width bin midpoints.
func kmeansEdges(xs []float64, k, maxIter int) []float64 {
	lo, hi := xs[0], xs[len(xs)-1]
	uniform := floats.Span(make([]float64, k+1), lo, hi)
	centers := make([]float64, k)
	for i := range centers {
		centers[i] = (uniform[i] + uniform[i+1]) / 2
	}

	assign := make([]int, len(xs))
	members := make([][]float64, k)
	for iter := 0; iter < maxIter; iter++ {
		changed := iter == 0
		for i, v := range xs {
			c := nearest(centers, v)
			if c != assign[i] {
				changed = true
			}
			assign[i] = c
		}
		if !changed {
			break
		}

		for c := range members {
			members[c] = members[c][:0]
		}
		for i, v := range xs {
			members[assign[i]] = append(members[assign[i]], v)
		}
		for c, m := range members {
			// an empty cluster keeps its previous centre
			if len(m) > 0 {
				centers[c] = stat.Mean(m, nil)
			}
		}
	}
	sort.Float64s(centers)

	edges := make([]float64, 0, k+1)
	edges = append(edges, lo)
	for i := 1; i < k; i++ {
		edges = append(edges, (centers[i-1]+centers[i])/2)
	}

	return append(edges, hi)
}

// nearest returns the closest centre; ties go to the lower index.
func nearest(centers []float64, v float64) int {
	best, bestD := 0, math.Abs(v-centers[0])
	for c := 1; c < len(centers); c++ {
		if d := math.Abs(v - centers[c]); d < bestD {
			best, bestD = c, d
		}
	}

	return best
}

// compact drops edges closer than minBinWidth to their predecessor and pins
// the last edge to hi.
func compact(edges []float64, hi float64) []float64 {
	out := []float64{edges[0]}
	for _, e := range edges[1:] {
		if e-out[len(out)-1] >= minBinWidth {
			out = append(out, e)
		}
	}
	if len(out) == 1 {
		return append(out, hi)
	}
	out[len(out)-1] = hi

	return out
}
