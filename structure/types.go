package structure

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/meteobn/core"
)

// Sentinel errors.
var (
	ErrNoVariables = errors.New("structure: table has no columns")
	ErrBadOption   = errors.New("structure: invalid option")
	ErrStartGraph  = errors.New("structure: start graph does not match the table")
)

// MoveKind enumerates single-edge operations.
type MoveKind int

const (
	Add MoveKind = iota
	Remove
	Reverse
)

func (k MoveKind) String() string {
	switch k {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Reverse:
		return "reverse"
	}

	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Move is one candidate operation on the edge From→To.
type Move struct {
	Kind MoveKind
	From string
	To   string
}

func (m Move) String() string { return fmt.Sprintf("%s(%s→%s)", m.Kind, m.From, m.To) }

// inverse is the move that undoes m.
func (m Move) inverse() Move {
	switch m.Kind {
	case Add:
		return Move{Kind: Remove, From: m.From, To: m.To}
	case Remove:
		return Move{Kind: Add, From: m.From, To: m.To}
	default:
		return Move{Kind: Reverse, From: m.To, To: m.From}
	}
}

// Step records one accepted move.
type Step struct {
	Iteration int
	Move      Move
	Delta     float64 // score improvement
	Score     float64 // total score after the move
}

// Result is the outcome of a search.
type Result struct {
	Graph      *core.Graph
	Score      float64
	Iterations int
	Trace      []Step
	Converged  bool // stopped because no move improved by epsilon
}

// Options configures HillClimb.
type Options struct {
	Ctx           context.Context
	MaxIndegree   int         // 0 = unbounded
	MaxIterations int         // iteration budget
	Epsilon       float64     // minimum accepted improvement, > 0
	TabuLength    int         // recently applied moves whose inverse is forbidden
	StartGraph    *core.Graph // seed graph, copied; nil = empty graph
	Workers       int         // parallel candidate scoring, >= 1
	OnStep        func(Step) error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: unbounded in-degree, 1e6 iterations, epsilon 1e-4,
// tabu length 100, empty start graph, one worker.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: 1_000_000,
		Epsilon:       1e-4,
		TabuLength:    100,
		Workers:       1,
	}
}

// WithContext enables cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIndegree bounds parents per node (0 = unbounded).
func WithMaxIndegree(k int) Option {
	return func(o *Options) { o.MaxIndegree = k }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithEpsilon sets the minimum accepted improvement.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithTabuLength sets the tabu list length (0 disables it).
func WithTabuLength(n int) Option {
	return func(o *Options) { o.TabuLength = n }
}

// WithStartGraph seeds the search. The graph is copied, never mutated.
func WithStartGraph(g *core.Graph) Option {
	return func(o *Options) { o.StartGraph = g }
}

// WithWorkers scores candidate moves on n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithOnStep installs a hook called after every accepted move. A non-nil
// error aborts the search. Panics if fn is nil.
func WithOnStep(fn func(Step) error) Option {
	if fn == nil {
		panic("structure: WithOnStep(nil)")
	}
	return func(o *Options) { o.OnStep = fn }
}

func (o Options) validate() error {
	switch {
	case o.MaxIndegree < 0:
		return fmt.Errorf("%w: MaxIndegree %d", ErrBadOption, o.MaxIndegree)
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations %d", ErrBadOption, o.MaxIterations)
	case !(o.Epsilon > 0):
		return fmt.Errorf("%w: Epsilon %g", ErrBadOption, o.Epsilon)
	case o.TabuLength < 0:
		return fmt.Errorf("%w: TabuLength %d", ErrBadOption, o.TabuLength)
	case o.Workers < 1:
		return fmt.Errorf("%w: Workers %d", ErrBadOption, o.Workers)
	}

	return nil
}
