package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	ErrInconsistentEvidence = errors.New("inference: evidence has probability zero")
	ErrUnknownVariable      = errors.New("inference: unknown variable")
	ErrBadQuery             = errors.New("inference: malformed query")
	ErrBadHeuristic         = errors.New("inference: unknown elimination heuristic")
)

// Heuristic selects the greedy elimination order.
type Heuristic int

const (
	// MinDegree eliminates the variable with the fewest neighbours.
	MinDegree Heuristic = iota
	// MinFill eliminates the variable whose removal adds the fewest edges.
	MinFill
)

func (h Heuristic) String() string {
	switch h {
	case MinDegree:
		return "min-degree"
	case MinFill:
		return "min-fill"
	}

	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic accepts "min-degree" and "min-fill" (case-insensitive).
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min-degree", "mindegree", "":
		return MinDegree, nil
	case "min-fill", "minfill":
		return MinFill, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadHeuristic, s)
}

// Options configures an Engine.
type Options struct {
	Ctx       context.Context
	Heuristic Heuristic
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MinDegree ordering without cancellation.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Heuristic: MinDegree}
}

// WithOrdering selects the elimination heuristic.
func WithOrdering(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithContext makes every query check ctx between eliminations; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
