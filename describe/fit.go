package describe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GammaFit is a gamma distribution with shape Alpha and rate Beta.
type GammaFit struct {
	Alpha, Beta float64
	Iterations  int // Newton steps; 0 for the method of moments
}

// Dist returns the fitted distribution.
func (g GammaFit) Dist() distuv.Gamma { return distuv.Gamma{Alpha: g.Alpha, Beta: g.Beta} }

// GammaMoments fits a gamma by the method of moments:
// α = mean²/var, β = mean/var.
func GammaMoments(xs []float64) (GammaFit, error) {
	x, err := positive(xs)
	if err != nil {
		return GammaFit{}, err
	}
	mean, variance := stat.MeanVariance(x, nil)

	return GammaFit{Alpha: mean * mean / variance, Beta: mean / variance}, nil
}

// GammaMLE fits a gamma by maximum likelihood. The shape solves
// log α − ψ(α) = log(mean) − mean(log x) by Newton–Raphson started at the
// moments estimate; β = α/mean.
//
// Errors: ErrTooFew, ErrNonPositive, ErrNoConvergence (also when all values
// are equal and α is unbounded).
func GammaMLE(xs []float64) (GammaFit, error) {
	const (
		maxIter = 100
		tol     = 1e-10
	)
	mom, err := GammaMoments(xs)
	if err != nil {
		return GammaFit{}, err
	}
	x := Clean(xs)
	mean := stat.Mean(x, nil)
	meanLog := 0.0
	for _, v := range x {
		meanLog += math.Log(v)
	}
	meanLog /= float64(len(x))
	s := math.Log(mean) - meanLog
	if !(s > 0) || math.IsInf(mom.Alpha, 0) {
		return GammaFit{}, fmt.Errorf("%w: gamma shape unbounded", ErrNoConvergence)
	}

	a := mom.Alpha
	for it := 1; it <= maxIter; it++ {
		f := math.Log(a) - mathext.Digamma(a) - s
		df := 1/a - trigamma(a)
		next := a - f/df
		if next <= 0 {
			next = a / 2
		}
		if math.Abs(next-a) <= tol*a {
			return GammaFit{Alpha: next, Beta: next / mean, Iterations: it}, nil
		}
		a = next
	}

	return GammaFit{}, fmt.Errorf("%w: gamma shape after %d steps", ErrNoConvergence, maxIter)
}

// trigamma is ψ′(x) for x > 0: recurrence up to x ≥ 6, then the asymptotic
// series.
func trigamma(x float64) float64 {
	acc := 0.0
	for x < 6 {
		acc += 1 / (x * x)
		x++
	}
	x2 := 1 / (x * x)

	return acc + 1/x + x2/2 + (1.0/6-x2*(1.0/30-x2*(1.0/42-x2/30)))*x2/x
}

// PoissonMLE returns the rate estimate (the sample mean) of non-negative
// counts.
func PoissonMLE(xs []float64) (float64, error) {
	x := Clean(xs)
	if len(x) == 0 {
		return 0, fmt.Errorf("%w: no values", ErrTooFew)
	}
	for _, v := range x {
		if v < 0 {
			return 0, fmt.Errorf("%w: %g", ErrNegative, v)
		}
	}

	return stat.Mean(x, nil), nil
}

// PoissonLikelihood evaluates L(λ | k) = e^{−λ} λ^k / k! at every λ.
func PoissonLikelihood(k int, lambdas []float64) []float64 {
	out := make([]float64, len(lambdas))
	for i, l := range lambdas {
		switch {
		case l > 0:
			out[i] = distuv.Poisson{Lambda: l}.Prob(float64(k))
		case k == 0:
			out[i] = 1
		}
	}

	return out
}

// NormalFit returns the maximum-likelihood normal for xs.
func NormalFit(xs []float64) (distuv.Normal, error) {
	x := Clean(xs)
	if len(x) < 2 {
		return distuv.Normal{}, fmt.Errorf("%w: %d", ErrTooFew, len(x))
	}
	var n distuv.Normal
	n.Fit(x, nil)

	return n, nil
}

func positive(xs []float64) ([]float64, error) {
	x := Clean(xs)
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFew, len(x))
	}
	for _, v := range x {
		if v <= 0 {
			return nil, fmt.Errorf("%w: %g", ErrNonPositive, v)
		}
	}

	return x, nil
}
