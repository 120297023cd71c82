// Package table holds the observation tables that flow through meteobn.
//
// A Table is the continuous Observation Table: named numeric columns, one
// []float64 per record, NaN marking a missing cell. Discrete is the
// discretized twin: one bin index per cell, Missing (-1) for a gap, plus the
// cardinality of every column and a per-column count of clamped values.
//
// CSV ingestion (ReadCSV) selects columns, filters rows by an ID column,
// recognizes missing-value tokens and numeric sentinels (9999.9 in GSOD
// station files), and applies an optional offset/limit window. Split then
// segregates complete rows, used for learning, from rows with gaps, kept
// for imputation.
//
// Errors:
//
//	ErrMissingColumn  – a requested column is absent from the header
//	ErrMalformedRow   – a cell is neither numeric nor a missing token
//	ErrEmpty          – no rows survive filtering
//	ErrShape          – rows and columns disagree in width
//	ErrBinRange       – a discrete cell lies outside [0, card)
package table
