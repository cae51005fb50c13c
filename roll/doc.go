// Package roll implements rolling-window statistics over multivariate
// panels.
//
// Every function evaluates its statistic independently at each time
// position over a trailing window of fixed width, with per-offset weights
// and missing-data tolerance. Outputs are NaN wherever a window is
// ineligible (fewer valid observations than Config.MinObs) or numerically
// degenerate (rank-deficient regression design, singular covariance or
// correlation matrix); such degeneracies never abort a call.
//
// # Kernels
//
// Elementwise, one output cell per input cell:
//
//	roll.Sum, roll.Prod, roll.Mean, roll.Var, roll.SD, roll.Scale,
//	roll.Min, roll.Max, roll.Median
//
// Matrix-valued, one p x p slice per time index:
//
//	roll.Cov, roll.Cor          // MatrixSeries
//	roll.Eigen                  // EigenResult: eigenvalues + eigenvectors
//
// Regression, coefficient and R-squared panels per y column:
//
//	roll.Lm                     // weighted least squares
//	roll.PCR                    // principal-component regression
//	roll.VIF                    // variance inflation factors
//
// # Configuration
//
// A single Config drives every kernel:
//
//	cfg := roll.DefaultConfig(20)
//	cfg.Weights = window.ExpWeights(20, 0.94)
//	cfg.MinObs = 10
//	res, err := roll.Mean(p, cfg)
//
// Weights are aligned oldest to newest and are never renormalized: an
// observation excluded by the missing-data policy simply drops its term.
// Weights scale the sum, mean, variance, standard deviation, scaling, and
// covariance family; products and order statistics use the plain valid
// window values.
//
// # Missing Data
//
// With CompleteObs false (pairwise), each variable or pair is judged on its
// own cells. With CompleteObs true (casewise), a row counts toward a
// multi-variable statistic only when every participating column is valid in
// that row. The regression family (Lm, PCR, VIF, Eigen) always requires
// complete rows across its participating columns. NARestore re-blanks an
// output whose defining source cell was missing: cell (t, j) for the
// elementwise kernels and VIF, and entry (t, a, b) of a covariance or
// correlation slice when x(t, a) or x(t, b) is missing.
//
// # Parallelism
//
// Each call fans its output units across a worker pool sized from the
// hardware unless Config.Workers overrides it. Config.Partition selects the
// partition axis; outputs are numerically identical for every worker count
// and axis because units never aggregate across each other and every window
// accumulates in a fixed order.
package roll
