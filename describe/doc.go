// Package describe computes univariate statistics of weather columns:
// location and spread, robust estimates, confidence intervals, gamma,
// Poisson and normal fits, a Gaussian kernel density estimate and the
// correlation matrix across columns.
//
// Missing values (NaN) are dropped before any computation.
package describe
