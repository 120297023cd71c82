package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Columns       []string  // Numeric columns to keep, in order (empty: every column except FilterColumn)
	FilterColumn  string    // Column holding the station/series ID (optional)
	FilterValue   string    // Keep only rows whose FilterColumn equals this value
	MissingTokens []string  // Cell texts treated as missing
	MissingValues []float64 // Numeric sentinels treated as missing
	Delimiter     rune      // Field delimiter (default: ',')
	Offset        int       // Rows to drop after filtering
	Limit         int       // Maximum rows to keep after Offset (0: no limit)
}

// DefaultCSVOptions returns default options for CSV loading: the GSOD
// sentinel 9999.9 and the usual NA spellings are treated as missing.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		MissingTokens: []string{"", "NA", "NaN", "nan", "null"},
		MissingValues: []float64{9999.9},
		Delimiter:     ',',
	}
}

// ReadCSV loads a Table from a CSV file.
func ReadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSVFrom(file, opts)
}

// ReadCSVFrom loads a Table from an io.Reader with a header row.
// Missing cells become NaN.
func ReadCSVFrom(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("table: header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	filterIdx := -1
	if opts.FilterColumn != "" {
		if filterIdx = indexOf(header, opts.FilterColumn); filterIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, opts.FilterColumn)
		}
	}

	columns := opts.Columns
	if len(columns) == 0 {
		for i, h := range header {
			if i != filterIdx {
				columns = append(columns, h)
			}
		}
	}
	idx := make([]int, len(columns))
	for k, c := range columns {
		if idx[k] = indexOf(header, c); idx[k] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}

	tokens := make(map[string]struct{}, len(opts.MissingTokens))
	for _, tok := range opts.MissingTokens {
		tokens[tok] = struct{}{}
	}

	var rows [][]float64
	kept := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}

		if filterIdx >= 0 {
			if strings.TrimSpace(strings.Trim(record[filterIdx], "\"")) != opts.FilterValue {
				continue
			}
		}

		kept++
		if kept <= opts.Offset {
			continue
		}
		if opts.Limit > 0 && len(rows) >= opts.Limit {
			break
		}

		row := make([]float64, len(idx))
		for k, j := range idx {
			v, err := parseCell(record[j], tokens, opts.MissingValues)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrMalformedRow, line, columns[k], err)
			}
			row[k] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return New(append([]string(nil), columns...), rows)
}

// parseCell maps a raw cell to a float, NaN for missing tokens and sentinels.
func parseCell(raw string, tokens map[string]struct{}, sentinels []float64) (float64, error) {
	s := strings.TrimSpace(strings.Trim(raw, "\""))
	if _, ok := tokens[s]; ok {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	for _, m := range sentinels {
		if v == m {
			return math.NaN(), nil
		}
	}

	return v, nil
}

// WriteCSV writes t with a header row; missing cells are written as "NA".
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	rec := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for j, v := range r {
			if IsMissing(v) {
				rec[j] = "NA"
			} else {
				rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDiscreteCSV writes bin indices with a header row; missing cells are
// written as "NA".
func WriteDiscreteCSV(w io.Writer, d *Discrete) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns); err != nil {
		return err
	}
	rec := make([]string, len(d.Columns))
	for _, r := range d.Rows {
		for j, v := range r {
			if v == Missing {
				rec[j] = "NA"
			} else {
				rec[j] = strconv.Itoa(v)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
