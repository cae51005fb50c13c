package roll

import (
	"math"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// Cov computes the rolling weighted covariance matrix of the panel columns.
// The result holds one p x p symmetric slice per time index. Pair validity
// follows the completeness mode: pairwise judges each pair on its own cells,
// casewise requires rows to be complete across every column.
func Cov(x *panel.Panel, cfg *Config) (*MatrixSeries, error) {
	return rollPairwise(x, cfg, false)
}

// Cor computes the rolling weighted correlation matrix of the panel columns.
// Diagonal entries are exactly 1 wherever the pair is eligible and the
// variance is positive.
func Cor(x *panel.Panel, cfg *Config) (*MatrixSeries, error) {
	return rollPairwise(x, cfg, true)
}

// pairCell computes one (t, a, b) covariance or correlation entry.
func pairCell(x *panel.Panel, c *call, t, a, b int, corr bool) float64 {
	start, end := c.ix.Bounds(t)
	group := c.pol.Group(a, b)

	var sumw, sumw2, swa, swb float64
	count := 0
	for i := start; i <= end; i++ {
		if !c.pol.Admit(i, group) {
			continue
		}
		w := window.WeightAt(c.weights, t, i)
		sumw += w
		sumw2 += w * w
		swa += w * x.At(i, a)
		swb += w * x.At(i, b)
		count++
	}
	if !c.pol.Eligible(count) || sumw == 0 {
		return math.NaN()
	}

	ma, mb := 0.0, 0.0
	if c.cfg.Center {
		ma, mb = swa/sumw, swb/sumw
	}

	var numAB, numAA, numBB float64
	for i := start; i <= end; i++ {
		if !c.pol.Admit(i, group) {
			continue
		}
		w := window.WeightAt(c.weights, t, i)
		da := x.At(i, a) - ma
		db := x.At(i, b) - mb
		numAB += w * da * db
		numAA += w * da * da
		numBB += w * db * db
	}

	if corr {
		if a == b {
			if numAA > 0 {
				return 1
			}
			return math.NaN()
		}
		den := math.Sqrt(numAA * numBB)
		if den == 0 {
			return math.NaN()
		}
		return numAB / den
	}

	denom := sumw - sumw2/sumw
	if denom <= 0 {
		return math.NaN()
	}
	return numAB / denom
}

// restorePair re-blanks the (t, a, b) entry when either of its defining
// source cells, x(t, a) or x(t, b), is missing.
func restorePair(x *panel.Panel, c *call, t, a, b int, v float64) float64 {
	v = c.pol.Restore(v, x.At(t, a))
	return c.pol.Restore(v, x.At(t, b))
}

func rollPairwise(x *panel.Panel, cfg *Config, corr bool) (*MatrixSeries, error) {
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	p := x.Cols
	out := newMatrixSeries(x.Rows, p, x.Names)

	if cfg.Partition == parallel.ByVariable {
		// One unit per unordered pair (a <= b); both triangles are written
		// by the pair's owner, so units stay disjoint.
		type pair struct{ a, b int }
		pairs := make([]pair, 0, p*(p+1)/2)
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				pairs = append(pairs, pair{a, b})
			}
		}
		parallel.Run(len(pairs), cfg.Workers, func(s, e int) {
			for k := s; k < e; k++ {
				a, b := pairs[k].a, pairs[k].b
				for t := 0; t < x.Rows; t++ {
					v := restorePair(x, c, t, a, b, pairCell(x, c, t, a, b, corr))
					out.Set(t, a, b, v)
					out.Set(t, b, a, v)
				}
			}
		})
	} else {
		parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
			for t := s; t < e; t++ {
				for a := 0; a < p; a++ {
					for b := a; b < p; b++ {
						v := restorePair(x, c, t, a, b, pairCell(x, c, t, a, b, corr))
						out.Set(t, a, b, v)
						out.Set(t, b, a, v)
					}
				}
			}
		})
	}

	return out, nil
}
