package discretize

import (
	"errors"
	"fmt"
)

// Strategy selects how bin edges are learned.
type Strategy string

const (
	KMeans   Strategy = "kmeans"
	Quantile Strategy = "quantile"
	Uniform  Strategy = "uniform"
)

// Sentinel errors.
var (
	ErrOutOfRange     = errors.New("discretize: value outside fitted range")
	ErrBadBins        = errors.New("discretize: bin count must be >= 1")
	ErrBadStrategy    = errors.New("discretize: unknown strategy")
	ErrNoData         = errors.New("discretize: column has no observed values")
	ErrUnknownColumn  = errors.New("discretize: column not in map")
	ErrBinOutOfBounds = errors.New("discretize: bin index out of bounds")
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case KMeans, Quantile, Uniform:
		return Strategy(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrBadStrategy, s)
}

// Options configures Fit and Transform.
type Options struct {
	Bins        int            // default bins per column
	ColumnBins  map[string]int // per-column override
	Strategy    Strategy
	StrictRange bool // fail instead of clamping
	MaxIter     int  // k-means iteration cap
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: 4 bins, k-means with at most 300 iterations, clamping.
func DefaultOptions() Options {
	return Options{Bins: 4, Strategy: KMeans, MaxIter: 300}
}

// WithBins sets the default bin count.
func WithBins(k int) Option {
	return func(o *Options) { o.Bins = k }
}

// WithColumnBins overrides the bin count of one column.
func WithColumnBins(column string, k int) Option {
	return func(o *Options) {
		if o.ColumnBins == nil {
			o.ColumnBins = make(map[string]int)
		}
		o.ColumnBins[column] = k
	}
}

// WithStrategy selects the binning strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithStrictRange makes Transform fail with ErrOutOfRange on values outside
// the fitted range.
func WithStrictRange() Option {
	return func(o *Options) { o.StrictRange = true }
}

// WithMaxIter caps k-means iterations.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

func (o Options) binsFor(column string) int {
	if k, ok := o.ColumnBins[column]; ok {
		return k
	}

	return o.Bins
}

func (o Options) validate(columns []string) error {
	switch o.Strategy {
	case KMeans, Quantile, Uniform:
	default:
		return fmt.Errorf("%w: %q", ErrBadStrategy, o.Strategy)
	}
	for _, c := range columns {
		if k := o.binsFor(c); k < 1 {
			return fmt.Errorf("%w: column %q has %d", ErrBadBins, c, k)
		}
	}

	return nil
}
