package discretize

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/meteobn/table"
)

// Bins describes one column's partition: Card()+1 increasing edges.
type Bins struct {
	Edges []float64
}

// Card is the number of bins.
func (b Bins) Card() int { return len(b.Edges) - 1 }

// Index returns the bin holding v and whether v had to be clamped.
func (b Bins) Index(v float64) (bin int, clamped bool) {
	k := b.Card()
	switch {
	case v < b.Edges[0]:
		return 0, true
	case v > b.Edges[k]:
		return k - 1, true
	}
	inner := b.Edges[1:k]

	return sort.Search(len(inner), func(i int) bool { return inner[i] > v }), false
}

// Value returns the representative (edge midpoint) of bin i.
func (b Bins) Value(i int) float64 { return (b.Edges[i] + b.Edges[i+1]) / 2 }

// Map is a fitted Discretization Map. It is immutable after Fit and safe
// for concurrent use.
type Map struct {
	columns   []string
	bins      map[string]Bins
	requested map[string]int // bin count asked for by Fit; empty for FromEdges
	strict    bool
}

// Fit learns bin edges for every column of t, ignoring missing cells.
//
// Errors:
//   - ErrBadStrategy, ErrBadBins for invalid options.
//   - ErrNoData if a column has no observed value.
func Fit(t *table.Table, opts ...Option) (*Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(t.Columns); err != nil {
		return nil, err
	}

	m := &Map{
		columns:   append([]string(nil), t.Columns...),
		bins:      make(map[string]Bins, len(t.Columns)),
		requested: make(map[string]int, len(t.Columns)),
		strict:    o.StrictRange,
	}
	for j, c := range t.Columns {
		xs := make([]float64, 0, len(t.Rows))
		for _, r := range t.Rows {
			if !table.IsMissing(r[j]) {
				xs = append(xs, r[j])
			}
		}
		if len(xs) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoData, c)
		}
		sort.Float64s(xs)
		m.requested[c] = o.binsFor(c)
		m.bins[c] = Bins{Edges: learnEdges(xs, m.requested[c], o)}
	}

	return m, nil
}

// FromEdges builds a Map from explicit edges, one increasing slice of at
// least two values per column.
func FromEdges(columns []string, edges map[string][]float64, opts ...Option) (*Map, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Map{columns: append([]string(nil), columns...), bins: make(map[string]Bins, len(columns)), strict: o.StrictRange}
	for _, c := range columns {
		e, ok := edges[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		if len(e) < 2 {
			return nil, fmt.Errorf("%w: column %q", ErrBadBins, c)
		}
		for i := 1; i < len(e); i++ {
			if !(e[i] > e[i-1]) {
				return nil, fmt.Errorf("%w: column %q edges not increasing", ErrBadBins, c)
			}
		}
		m.bins[c] = Bins{Edges: append([]float64(nil), e...)}
	}

	return m, nil
}

// Columns returns the fitted column names in fit order.
func (m *Map) Columns() []string { return append([]string(nil), m.columns...) }

// Bins returns the partition of column c.
func (m *Map) Bins(c string) (Bins, error) {
	b, ok := m.bins[c]
	if !ok {
		return Bins{}, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}

	return b, nil
}

// Card returns the fitted cardinality of column c.
func (m *Map) Card(c string) (int, error) {
	b, err := m.Bins(c)
	if err != nil {
		return 0, err
	}

	return b.Card(), nil
}

// Reduced returns, in fit order, the columns whose fitted cardinality fell
// below the requested bin count because edges closer than the minimum bin
// width were merged (few distinct values, duplicate quantiles).
func (m *Map) Reduced() []string {
	var out []string
	for _, c := range m.columns {
		if k, ok := m.requested[c]; ok && m.bins[c].Card() < k {
			out = append(out, c)
		}
	}

	return out
}

// Requested returns the bin count Fit was asked for on column c, or 0 for
// a Map built by FromEdges.
func (m *Map) Requested(c string) int { return m.requested[c] }

// Bin maps a single value of column c. NaN maps to table.Missing.
func (m *Map) Bin(c string, v float64) (int, bool, error) {
	b, err := m.Bins(c)
	if err != nil {
		return 0, false, err
	}
	if table.IsMissing(v) {
		return table.Missing, false, nil
	}
	i, clamped := b.Index(v)
	if clamped && m.strict {
		return 0, true, fmt.Errorf("%w: %q value %g not in [%g, %g]", ErrOutOfRange, c, v, b.Edges[0], b.Edges[b.Card()])
	}

	return i, clamped, nil
}

// Value maps bin i of column c to its representative value.
// table.Missing maps to NaN.
func (m *Map) Value(c string, i int) (float64, error) {
	b, err := m.Bins(c)
	if err != nil {
		return 0, err
	}
	if i == table.Missing {
		return math.NaN(), nil
	}
	if i < 0 || i >= b.Card() {
		return 0, fmt.Errorf("%w: %q bin %d of %d", ErrBinOutOfBounds, c, i, b.Card())
	}

	return b.Value(i), nil
}

// Transform discretizes every column of t that the map knows; t must not
// contain other columns. The result is a new table; t is not modified.
func (m *Map) Transform(t *table.Table) (*table.Discrete, error) {
	cards := make([]int, len(t.Columns))
	for j, c := range t.Columns {
		k, err := m.Card(c)
		if err != nil {
			return nil, err
		}
		cards[j] = k
	}

	clamped := make(map[string]int)
	rows := make([][]int, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]int, len(r))
		for j, v := range r {
			b, wasClamped, err := m.Bin(t.Columns[j], v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			if wasClamped {
				clamped[t.Columns[j]]++
			}
			row[j] = b
		}
		rows[i] = row
	}

	d, err := table.NewDiscrete(append([]string(nil), t.Columns...), cards, rows)
	if err != nil {
		return nil, err
	}
	d.Clamped = clamped

	return d, nil
}

// Inverse maps every bin back to its representative value. Missing cells
// become NaN.
func (m *Map) Inverse(d *table.Discrete) (*table.Table, error) {
	rows := make([][]float64, len(d.Rows))
	for i, r := range d.Rows {
		row := make([]float64, len(r))
		for j, b := range r {
			v, err := m.Value(d.Columns[j], b)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return table.New(append([]string(nil), d.Columns...), rows)
}
