// Package window provides window indexing, weight vectors, and the
// missing-data policy shared by every rolling kernel.
//
// # Window Indexing
//
// An Indexer yields the trailing index range for each output position:
//
//	ix, err := window.NewIndexer(n, width)
//	start, end := ix.Bounds(t) // [max(0, t-width+1), t]
//
// Windows before position width-1 are partial; they still produce output
// when their valid-observation count reaches the configured minimum.
//
// # Weights
//
// Weight vectors have one coefficient per window offset, aligned oldest to
// newest. The last weight always applies to the newest observation, so a
// partial window uses the most recent weights:
//
//	w := window.EqualWeights(10)
//	w := window.ExpWeights(10, 0.94)
//	wi := window.WeightAt(w, t, i)
//
// # Missing Data
//
// A Mask records per-cell validity; a Policy layers the completeness mode,
// the minimum observation count, and output restoration on top of it:
//
//	pol := window.NewPolicy(p, casewise, naRestore, minObs)
//	group := pol.Group(a, b)
//	count := pol.Count(start, end, group)
//	if pol.Eligible(count) { ... }
//
// An observation excluded by the policy drops its term from the aggregate;
// weights are never renormalized.
package window
