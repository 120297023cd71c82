package score

import (
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/table"
)

// Scorer evaluates a Func on a fixed table, caching local scores.
type Scorer struct {
	data *table.Discrete
	fn   Func

	mu     sync.RWMutex
	cache  map[string]float64
	hits   int
	misses int
}

// NewScorer binds fn to d. d must not be modified while the Scorer is in use.
func NewScorer(d *table.Discrete, fn Func) *Scorer {
	return &Scorer{data: d, fn: fn, cache: make(map[string]float64)}
}

// Data returns the bound table.
func (s *Scorer) Data() *table.Discrete { return s.data }

// Local returns the local score of child with the given parents. The parent
// order does not matter.
func (s *Scorer) Local(child string, parents []string) (float64, error) {
	ps := append([]string(nil), parents...)
	sort.Strings(ps)
	key := child + "|" + strings.Join(ps, ",")

	s.mu.RLock()
	v, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		s.mu.Lock()
		s.hits++
		s.mu.Unlock()
		return v, nil
	}

	c, err := Count(s.data, child, ps)
	if err != nil {
		return 0, err
	}
	v = s.fn(c)

	s.mu.Lock()
	s.cache[key] = v
	s.misses++
	s.mu.Unlock()

	return v, nil
}

// Total sums the local scores of every vertex of g.
func (s *Scorer) Total(g *core.Graph) (float64, error) {
	total := 0.0
	for _, v := range g.Vertices() {
		ps, err := g.Parents(v)
		if err != nil {
			return 0, err
		}
		l, err := s.Local(v, ps)
		if err != nil {
			return 0, err
		}
		total += l
	}

	return total, nil
}

// CacheStats reports cache hits and misses since construction.
func (s *Scorer) CacheStats() (hits, misses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hits, s.misses
}
