package table

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for table construction and ingestion.
var (
	ErrMissingColumn = errors.New("table: missing column")
	ErrMalformedRow  = errors.New("table: malformed row")
	ErrEmpty         = errors.New("table: no rows")
	ErrShape         = errors.New("table: row width does not match columns")
	ErrBinRange      = errors.New("table: bin index out of range")
	ErrDuplicate     = errors.New("table: duplicate column name")
)

// Missing marks an absent cell in a Discrete table.
const Missing = -1

// Table is a continuous observation table. NaN marks a missing cell.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// New validates widths and column names and returns a Table over the given
// slices (not copied).
func New(columns []string, rows [][]float64) (*Table, error) {
	if err := checkColumns(columns); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShape, i, len(r), len(columns))
		}
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

func checkColumns(columns []string) error {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicate, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int { return indexOf(t.Columns, name) }

// Column returns a copy of column name.
func (t *Table) Column(name string) ([]float64, error) {
	j := t.Index(name)
	if j < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[j]
	}

	return out, nil
}

// Clone deep-copies the table.
func (t *Table) Clone() *Table {
	rows := make([][]float64, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = append([]float64(nil), r...)
	}

	return &Table{Columns: append([]string(nil), t.Columns...), Rows: rows}
}

// Select returns a new table restricted to the named columns, in that order.
func (t *Table) Select(names ...string) (*Table, error) {
	idx := make([]int, len(names))
	for k, n := range names {
		if idx[k] = t.Index(n); idx[k] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, n)
		}
	}
	rows := make([][]float64, len(t.Rows))
	for i, r := range t.Rows {
		row := make([]float64, len(idx))
		for k, j := range idx {
			row[k] = r[j]
		}
		rows[i] = row
	}

	return New(append([]string(nil), names...), rows)
}

// IsMissing reports whether a continuous cell is absent.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Split segregates complete rows from rows with at least one missing cell.
// missingIdx holds the original positions of the rows in missing.
func (t *Table) Split() (complete, missing *Table, missingIdx []int) {
	complete = &Table{Columns: t.Columns}
	missing = &Table{Columns: t.Columns}
	for i, r := range t.Rows {
		gap := false
		for _, v := range r {
			if IsMissing(v) {
				gap = true
				break
			}
		}
		if gap {
			missing.Rows = append(missing.Rows, r)
			missingIdx = append(missingIdx, i)
		} else {
			complete.Rows = append(complete.Rows, r)
		}
	}

	return complete, missing, missingIdx
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}

	return -1
}
