package bayesnet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/meteobn/matrix"
	"github.com/katalvlaran/meteobn/table"
)

// Sentinel errors.
var (
	ErrInvalidGraph    = errors.New("bayesnet: invalid graph")
	ErrUnfitted        = errors.New("bayesnet: network has no parameters")
	ErrUnknownVariable = errors.New("bayesnet: unknown variable")
	ErrIncomplete      = errors.New("bayesnet: assignment misses a variable")
	ErrStateOutOfRange = errors.New("bayesnet: state out of range")
	ErrInvalidCPT      = errors.New("bayesnet: invalid conditional probability table")
	ErrBadPseudoCount  = errors.New("bayesnet: pseudo count must be finite and >= 0")
)

// Assignment maps variable names to bin indices.
type Assignment map[string]int

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// String renders "A=1 B=0" in name order.
func (a Assignment) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, a[k])
	}

	return strings.Join(parts, " ")
}

// FromRow builds an Assignment from one discretized row, skipping missing
// cells.
func FromRow(columns []string, row []int) Assignment {
	a := make(Assignment, len(columns))
	for j, c := range columns {
		if j < len(row) && row[j] != table.Missing {
			a[c] = row[j]
		}
	}

	return a
}

// node is one variable of the network.
type node struct {
	name        string
	card        int
	parents     []string // sorted
	parentCards []int
	cpt         *matrix.Dense // nil until fitted
}

// configs is the number of parent configurations.
func (n *node) configs() int {
	q := 1
	for _, c := range n.parentCards {
		q *= c
	}

	return q
}

// Options configures parameter estimation.
type Options struct {
	// PseudoCount is added to every cell before normalising (Laplace
	// smoothing at 1). With 0 an unseen parent configuration gets the
	// uniform distribution.
	PseudoCount float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Laplace smoothing.
func DefaultOptions() Options { return Options{PseudoCount: 1} }

// WithPseudoCount sets the additive smoothing constant.
func WithPseudoCount(alpha float64) Option {
	return func(o *Options) { o.PseudoCount = alpha }
}
