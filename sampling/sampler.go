package sampling

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/meteobn/bayesnet"
	"github.com/katalvlaran/meteobn/matrix"
	"github.com/katalvlaran/meteobn/table"
)

// ErrBadCount reports a negative sample count or worker count below one.
var ErrBadCount = errors.New("sampling: count must be >= 0 and workers >= 1")

// chunkSize is the number of rows drawn from one derived stream in Table.
const chunkSize = 4096

// Options configures a Sampler.
type Options struct {
	Seed    int64 // 0 selects a fixed default
	Workers int   // goroutines used by Table
	Ctx     context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default seed, one worker and no cancellation.
func DefaultOptions() Options {
	return Options{Workers: 1, Ctx: context.Background()}
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers draws Table chunks on n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithContext enables cancellation of Table; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// step is one node in sampling order; parents index into the same order.
type step struct {
	name        string
	col         int // position in the network's variable list
	parents     []int
	parentCards []int
	cpt         *matrix.Dense
}

// Sampler draws assignments from one network. It is safe for concurrent use.
type Sampler struct {
	variables []string
	steps     []step
	opts      Options
}

// New prepares a sampler. The network must be fitted.
func New(net *bayesnet.Network, opts ...Option) (*Sampler, error) {
	if net == nil || !net.Fitted() {
		return nil, bayesnet.ErrUnfitted
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("%w: workers %d", ErrBadCount, o.Workers)
	}

	vars := net.Variables()
	col := make(map[string]int, len(vars))
	for i, v := range vars {
		col[v] = i
	}
	order := net.Order()
	pos := make(map[string]int, len(order))
	s := &Sampler{variables: vars, opts: o}
	for i, v := range order {
		pos[v] = i
		ps, _ := net.Parents(v)
		st := step{name: v, col: col[v]}
		for _, p := range ps {
			k, _ := net.Card(p)
			st.parents = append(st.parents, pos[p])
			st.parentCards = append(st.parentCards, k)
		}
		cpt, err := net.CPT(v)
		if err != nil {
			return nil, err
		}
		st.cpt = cpt
		s.steps = append(s.steps, st)
	}

	return s, nil
}

// Sample yields count assignments. Each iteration of the returned sequence
// restarts from the sampler's seed.
func (s *Sampler) Sample(count int) iter.Seq[bayesnet.Assignment] {
	return func(yield func(bayesnet.Assignment) bool) {
		r := rngFromSeed(s.opts.Seed)
		states := make([]int, len(s.steps))
		for i := 0; i < count; i++ {
			s.drawInto(r, states)
			a := make(bayesnet.Assignment, len(s.steps))
			for k, st := range s.steps {
				a[st.name] = states[k]
			}
			if !yield(a) {
				return
			}
		}
	}
}

// Table draws count rows into a discrete table with the network's columns.
// Chunk c of chunkSize rows uses the seed derived from (seed, c).
func (s *Sampler) Table(count int) (*table.Discrete, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrBadCount, count)
	}
	rows := make([][]int, count)

	eg, ctx := errgroup.WithContext(s.opts.Ctx)
	eg.SetLimit(s.opts.Workers)
	for c := 0; c*chunkSize < count; c++ {
		lo, hi := c*chunkSize, min((c+1)*chunkSize, count)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := rand.New(rand.NewSource(deriveSeed(s.seed(), uint64(c))))
			states := make([]int, len(s.steps))
			for i := lo; i < hi; i++ {
				s.drawInto(r, states)
				row := make([]int, len(s.variables))
				for k, st := range s.steps {
					row[st.col] = states[k]
				}
				rows[i] = row
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	cards := make([]int, len(s.variables))
	for _, st := range s.steps {
		cards[st.col] = st.cpt.Cols()
	}

	return table.NewDiscrete(append([]string(nil), s.variables...), cards, rows)
}

func (s *Sampler) seed() int64 {
	if s.opts.Seed == 0 {
		return defaultSeed
	}

	return s.opts.Seed
}

// drawInto fills states (indexed by sampling order) with one joint draw.
func (s *Sampler) drawInto(r *rand.Rand, states []int) {
	for k, st := range s.steps {
		j := 0
		for i, p := range st.parents {
			j = j*st.parentCards[i] + states[p]
		}
		states[k] = draw(r, st.cpt.RawRow(j))
	}
}
