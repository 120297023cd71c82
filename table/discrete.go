package table

import (
	"fmt"
	"sort"
)

// Discrete is a discretized observation table. Each cell holds a bin index
// in [0, Cards[j]) or Missing.
type Discrete struct {
	Columns []string
	Cards   []int
	Rows    [][]int

	// Clamped counts, per column, values that fell outside the fitted range
	// and were clamped to the nearest bin.
	Clamped map[string]int
}

// NewDiscrete validates widths, cardinalities and bin ranges.
func NewDiscrete(columns []string, cards []int, rows [][]int) (*Discrete, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}
	if len(cards) != len(columns) {
		return nil, fmt.Errorf("%w: %d cardinalities for %d columns", ErrShape, len(cards), len(columns))
	}
	for j, k := range cards {
		if k < 1 {
			return nil, fmt.Errorf("%w: column %q has cardinality %d", ErrBinRange, columns[j], k)
		}
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, i, len(r), len(columns))
		}
		for j, v := range r {
			if v != Missing && (v < 0 || v >= cards[j]) {
				return nil, fmt.Errorf("%w: row %d column %q value %d (card %d)", ErrBinRange, i, columns[j], v, cards[j])
			}
		}
	}

	return &Discrete{Columns: columns, Cards: cards, Rows: rows, Clamped: map[string]int{}}, nil
}

// Len returns the number of rows.
func (d *Discrete) Len() int { return len(d.Rows) }

// Index returns the position of column name, or -1.
func (d *Discrete) Index(name string) int { return indexOf(d.Columns, name) }

// Card returns the cardinality of column name.
func (d *Discrete) Card(name string) (int, error) {
	j := d.Index(name)
	if j < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	return d.Cards[j], nil
}

// Column returns a copy of column name.
func (d *Discrete) Column(name string) ([]int, error) {
	j := d.Index(name)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	out := make([]int, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r[j]
	}

	return out, nil
}

// Frequencies returns the relative frequency of each bin of column name,
// ignoring missing cells.
func (d *Discrete) Frequencies(name string) ([]float64, error) {
	j := d.Index(name)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	freq := make([]float64, d.Cards[j])
	n := 0
	for _, r := range d.Rows {
		if r[j] == Missing {
			continue
		}
		freq[r[j]]++
		n++
	}
	if n > 0 {
		for k := range freq {
			freq[k] /= float64(n)
		}
	}

	return freq, nil
}

// Clone deep-copies the table.
func (d *Discrete) Clone() *Discrete {
	rows := make([][]int, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = append([]int(nil), r...)
	}
	clamped := make(map[string]int, len(d.Clamped))
	for k, v := range d.Clamped {
		clamped[k] = v
	}

	return &Discrete{
		Columns: append([]string(nil), d.Columns...),
		Cards:   append([]int(nil), d.Cards...),
		Rows:    rows,
		Clamped: clamped,
	}
}

// MissingColumns returns, sorted by position, the columns missing in row i.
func (d *Discrete) MissingColumns(i int) []string {
	var out []string
	for j, v := range d.Rows[i] {
		if v == Missing {
			out = append(out, d.Columns[j])
		}
	}

	return out
}

// ClampedColumns lists columns with at least one clamp, sorted by name.
func (d *Discrete) ClampedColumns() []string {
	out := make([]string, 0, len(d.Clamped))
	for k, v := range d.Clamped {
		if v > 0 {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}
