package score

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors.
var (
	ErrUnknownVariable = errors.New("score: unknown variable")
	ErrUnknownScore    = errors.New("score: unknown score")
	ErrBadESS          = errors.New("score: equivalent sample size must be > 0")
)

// Func is a local score formula.
type Func func(c *Counts) float64

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// K2 is the Cooper–Herskovits score: a uniform Dirichlet(1,…,1) prior on
// every conditional distribution.
func K2(c *Counts) float64 {
	r := float64(c.R)
	s := 0.0
	for j := 0; j < c.Q; j++ {
		s += lgamma(r) - lgamma(c.Nij[j]+r)
		for k := 0; k < c.R; k++ {
			s += lgamma(c.At(j, k) + 1)
		}
	}

	return s
}

// BDeu returns the likelihood-equivalent uniform Bayesian Dirichlet score
// with equivalent sample size ess.
func BDeu(ess float64) Func {
	return func(c *Counts) float64 {
		aij := ess / float64(c.Q)
		aijk := aij / float64(c.R)
		s := 0.0
		for j := 0; j < c.Q; j++ {
			s += lgamma(aij) - lgamma(c.Nij[j]+aij)
			for k := 0; k < c.R; k++ {
				s += lgamma(c.At(j, k)+aijk) - lgamma(aijk)
			}
		}

		return s
	}
}

// BIC is the log-likelihood penalized by ½ ln N per free parameter.
func BIC(c *Counts) float64 {
	ll := 0.0
	for j := 0; j < c.Q; j++ {
		for k := 0; k < c.R; k++ {
			if n := c.At(j, k); n > 0 {
				ll += n * math.Log(n/c.Nij[j])
			}
		}
	}
	if c.N == 0 {
		return ll
	}

	return ll - 0.5*math.Log(float64(c.N))*float64(c.Q*(c.R-1))
}

// ByName resolves "k2", "bdeu" or "bic" (case-insensitive).
func ByName(name string, ess float64) (Func, error) {
	switch strings.ToLower(name) {
	case "k2":
		return K2, nil
	case "bdeu":
		if ess <= 0 {
			return nil, fmt.Errorf("%w: %g", ErrBadESS, ess)
		}
		return BDeu(ess), nil
	case "bic":
		return BIC, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScore, name)
}
