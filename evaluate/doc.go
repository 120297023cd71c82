// Package evaluate measures how well a fitted network reconstructs each
// variable from the others, and fills missing cells by MAP inference.
//
// Evaluate hides one variable at a time. For every row where that variable
// is observed, every other observed network variable of the row becomes
// evidence and the MAP bin is compared with the true bin under each Metric.
// Variables are evaluated in parallel (WithWorkers); the report is ordered
// by the network's variables and does not depend on the worker count.
//
// Impute fills every missing network cell of a row with the joint MAP of the
// missing variables given the row's observed ones. The evidence set stays
// the same for the whole row. The input table is never modified.
package evaluate
