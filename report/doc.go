// Package report renders pipeline results for people: the accuracy table,
// univariate summaries, the Dependency Graph in Graphviz DOT, and
// comparative original/synthetic bin-frequency charts as PNG files.
package report
