package inference

import (
	"fmt"

	"github.com/katalvlaran/meteobn/bayesnet"
)

// Factor is a non-negative table over a scope of discrete variables, stored
// row-major with the first variable most significant.
type Factor struct {
	vars   []string
	cards  []int
	values []float64
}

// newFactor allocates a zero factor over vars.
func newFactor(vars []string, cards []int) *Factor {
	size := 1
	for _, c := range cards {
		size *= c
	}

	return &Factor{
		vars:   append([]string(nil), vars...),
		cards:  append([]int(nil), cards...),
		values: make([]float64, size),
	}
}

// Vars returns the scope.
func (f *Factor) Vars() []string { return append([]string(nil), f.vars...) }

// Cards returns the cardinality of each scope variable.
func (f *Factor) Cards() []int { return append([]int(nil), f.cards...) }

// Values returns a copy of the table.
func (f *Factor) Values() []float64 { return append([]float64(nil), f.values...) }

// At returns the entry selected by a, which must assign every scope variable.
func (f *Factor) At(a bayesnet.Assignment) (float64, error) {
	idx := 0
	for i, v := range f.vars {
		s, ok := a[v]
		if !ok {
			return 0, fmt.Errorf("%w: %q unassigned", ErrBadQuery, v)
		}
		if s < 0 || s >= f.cards[i] {
			return 0, fmt.Errorf("%w: %s=%d (card %d)", ErrBadQuery, v, s, f.cards[i])
		}
		idx = idx*f.cards[i] + s
	}

	return f.values[idx], nil
}

// ArgMax returns the assignment of the largest entry; ties go to the lowest
// flat index.
func (f *Factor) ArgMax() bayesnet.Assignment {
	best := 0
	for i := 1; i < len(f.values); i++ {
		if f.values[i] > f.values[best] {
			best = i
		}
	}

	return f.decode(best)
}

// decode maps a flat index to an assignment of the scope.
func (f *Factor) decode(idx int) bayesnet.Assignment {
	a := make(bayesnet.Assignment, len(f.vars))
	for i := len(f.vars) - 1; i >= 0; i-- {
		a[f.vars[i]] = idx % f.cards[i]
		idx /= f.cards[i]
	}

	return a
}

// digits fills states with the per-variable states of flat index idx.
func (f *Factor) digits(idx int, states []int) {
	for i := len(f.cards) - 1; i >= 0; i-- {
		states[i] = idx % f.cards[i]
		idx /= f.cards[i]
	}
}

func (f *Factor) index(v string) int {
	for i, x := range f.vars {
		if x == v {
			return i
		}
	}

	return -1
}

func (f *Factor) sum() float64 {
	s := 0.0
	for _, v := range f.values {
		s += v
	}

	return s
}

// product multiplies a and b over the union of their scopes (a's variables
// first).
func product(a, b *Factor) *Factor {
	vars := append([]string(nil), a.vars...)
	cards := append([]int(nil), a.cards...)
	for i, v := range b.vars {
		if a.index(v) < 0 {
			vars = append(vars, v)
			cards = append(cards, b.cards[i])
		}
	}
	out := newFactor(vars, cards)

	// position of each b variable inside the output scope
	bpos := make([]int, len(b.vars))
	for i, v := range b.vars {
		bpos[i] = out.index(v)
	}

	states := make([]int, len(vars))
	for idx := range out.values {
		out.digits(idx, states)
		ai := 0
		for i := range a.vars {
			ai = ai*a.cards[i] + states[i]
		}
		bi := 0
		for i := range b.vars {
			bi = bi*b.cards[i] + states[bpos[i]]
		}
		out.values[idx] = a.values[ai] * b.values[bi]
	}

	return out
}

// sumOut marginalises v away. v must be in scope.
func (f *Factor) sumOut(v string) *Factor {
	k := f.index(v)
	vars := append(append([]string(nil), f.vars[:k]...), f.vars[k+1:]...)
	cards := append(append([]int(nil), f.cards[:k]...), f.cards[k+1:]...)
	out := newFactor(vars, cards)

	states := make([]int, len(f.vars))
	for idx, x := range f.values {
		f.digits(idx, states)
		oi := 0
		for i := range f.vars {
			if i != k {
				oi = oi*f.cards[i] + states[i]
			}
		}
		out.values[oi] += x
	}

	return out
}

// reduce keeps the slice where every evidence variable in scope takes its
// observed state, dropping those variables.
func (f *Factor) reduce(evidence bayesnet.Assignment) *Factor {
	var vars []string
	var cards []int
	for i, v := range f.vars {
		if _, ok := evidence[v]; !ok {
			vars = append(vars, v)
			cards = append(cards, f.cards[i])
		}
	}
	if len(vars) == len(f.vars) {
		return f
	}
	out := newFactor(vars, cards)

	states := make([]int, len(f.vars))
	for idx, x := range f.values {
		f.digits(idx, states)
		oi, keep := 0, true
		for i, v := range f.vars {
			if s, ok := evidence[v]; ok {
				if states[i] != s {
					keep = false
					break
				}
				continue
			}
			oi = oi*f.cards[i] + states[i]
		}
		if keep {
			out.values[oi] = x
		}
	}

	return out
}

// reorder permutes the scope to vars, which must be a permutation of f.vars.
func (f *Factor) reorder(vars []string) *Factor {
	cards := make([]int, len(vars))
	pos := make([]int, len(vars))
	for i, v := range vars {
		pos[i] = f.index(v)
		cards[i] = f.cards[pos[i]]
	}
	out := newFactor(vars, cards)

	states := make([]int, len(vars))
	for idx := range out.values {
		out.digits(idx, states)
		fi := 0
		for j := range f.vars {
			// state of f.vars[j] lives at the output position holding it
			for i, p := range pos {
				if p == j {
					fi = fi*f.cards[j] + states[i]
					break
				}
			}
		}
		out.values[idx] = f.values[fi]
	}

	return out
}
