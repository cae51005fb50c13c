// Package goroll provides rolling-window statistics for multivariate time
// series panels.
//
// GoRoll computes sliding-window statistics over n x p numeric panels: sums,
// products, means, variances, standard deviations, standardized values,
// covariance and correlation matrices, least-squares regressions,
// principal-component regressions, eigen-decompositions, and variance
// inflation factors. Every statistic is evaluated independently at each time
// position over a trailing window of fixed width, with per-offset weights and
// tolerance for missing observations.
//
// # Features
//
//   - Weighted rolling moments (sum, mean, variance, standard deviation)
//   - Rolling products and order statistics (min, max, median)
//   - Rolling standardization (z-scores)
//   - Rolling covariance and correlation matrices
//   - Rolling weighted least squares with R-squared
//   - Rolling principal-component regression
//   - Rolling eigen-decomposition with a stable sign convention
//   - Rolling variance inflation factors
//   - Missing-data policies (pairwise or casewise) with min_obs gating
//   - Deterministic parallel execution across a configurable worker pool
//
// # Quick Start
//
// Compute a weighted rolling mean:
//
//	p, _ := panel.New(n, 1, values)
//	cfg := roll.DefaultConfig(10)
//	means, _ := roll.Mean(p, cfg)
//
// Run a rolling regression:
//
//	cfg := roll.DefaultConfig(20)
//	res, _ := roll.Lm(x, y, cfg)
//	coefs := res.Coefficients[0] // per-window coefficients for y column 0
//
// # Packages
//
// The library is organized into the following packages:
//
//   - roll: rolling statistic kernels and configuration
//   - panel: panel data structures and CSV loading
//   - window: window indexing, weights, and missing-data policy
//   - parallel: deterministic work partitioning across workers
//
// # Conventions
//
// Missing values are represented as NaN. Weights are aligned oldest to
// newest; for a partial window the most recent weights apply. A window emits
// a result only when its count of valid observations reaches the configured
// minimum; numerical degeneracies (rank-deficient or singular windows) yield
// missing output for that position only.
package goroll
