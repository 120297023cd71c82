package evaluate

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	ErrMissingVariable = errors.New("evaluate: table lacks a network variable")
	ErrBadOption       = errors.New("evaluate: invalid option")
)

// ValueMapper turns a bin of variable into the number metrics compare,
// e.g. discretize.Map.Value for errors in original units.
type ValueMapper func(variable string, bin int) (float64, error)

// Options configures Evaluate and Impute.
type Options struct {
	Ctx     context.Context
	Workers int
	Metrics []Metric
	Values  ValueMapper // nil compares bin indices
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: one worker, DefaultMetrics, bin indices.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1, Metrics: DefaultMetrics()}
}

// WithContext enables cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the goroutines used per call.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMetrics replaces the metric list.
func WithMetrics(ms ...Metric) Option {
	return func(o *Options) { o.Metrics = append([]Metric(nil), ms...) }
}

// WithValues maps bins to values before metrics are computed.
func WithValues(fn ValueMapper) Option {
	return func(o *Options) { o.Values = fn }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 || len(o.Metrics) == 0 {
		return o, ErrBadOption
	}

	return o, nil
}
