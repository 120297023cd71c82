package score

import (
	"fmt"

	"github.com/katalvlaran/meteobn/table"
)

// Counts holds the sufficient statistics of one family.
type Counts struct {
	R    int       // child cardinality
	Q    int       // number of parent configurations
	N    int       // rows counted
	Nij  []float64 // per parent configuration, len Q
	Nijk []float64 // row-major Q×R
}

// At returns N_ijk.
func (c *Counts) At(j, k int) float64 { return c.Nijk[j*c.R+k] }

// Count tallies child against parents over every row of d where the family
// is fully observed. Parent configurations are indexed in mixed radix with
// the first parent most significant.
func Count(d *table.Discrete, child string, parents []string) (*Counts, error) {
	ci := d.Index(child)
	if ci < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, child)
	}
	pi := make([]int, len(parents))
	q := 1
	for k, p := range parents {
		if pi[k] = d.Index(p); pi[k] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, p)
		}
		q *= d.Cards[pi[k]]
	}
	r := d.Cards[ci]

	c := &Counts{R: r, Q: q, Nij: make([]float64, q), Nijk: make([]float64, q*r)}
rows:
	for _, row := range d.Rows {
		if row[ci] == table.Missing {
			continue
		}
		j := 0
		for _, idx := range pi {
			v := row[idx]
			if v == table.Missing {
				continue rows
			}
			j = j*d.Cards[idx] + v
		}
		c.Nij[j]++
		c.Nijk[j*r+row[ci]]++
		c.N++
	}

	return c, nil
}
