package roll

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// Eigen computes the rolling eigen-decomposition of the weighted covariance
// matrix of the panel columns (correlation matrix when Scale is set).
// Eigenvalues are ordered descending; each eigenvector's sign is fixed so
// its largest-magnitude entry is positive, keeping the eigenvector stream
// continuous across adjacent overlapping windows.
func Eigen(x *panel.Panel, cfg *Config) (*EigenResult, error) {
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	p := x.Cols
	res := &EigenResult{
		Values:  panel.Missing(x.Rows, p),
		Vectors: newMatrixSeries(x.Rows, p, x.Names),
	}

	parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
		for t := s; t < e; t++ {
			rows := casewiseRows(x, c, t)
			if !c.pol.Eligible(len(rows)) {
				continue
			}
			sym := windowMoment(x, c, t, rows, cfg.Center, cfg.Scale, true)
			if sym == nil {
				continue
			}

			var eig mat.EigenSym
			if !eig.Factorize(sym, true) {
				continue
			}
			vals := eig.Values(nil) // ascending
			var vecs mat.Dense
			eig.VectorsTo(&vecs)

			for k := 0; k < p; k++ {
				src := p - 1 - k
				res.Values.Set(t, k, vals[src])
				sign := vectorSign(&vecs, src)
				for j := 0; j < p; j++ {
					res.Vectors.Set(t, j, k, sign*vecs.At(j, src))
				}
			}
		}
	})

	return res, nil
}

// vectorSign returns -1 when the largest-magnitude entry of column k is
// negative, 1 otherwise.
func vectorSign(vecs *mat.Dense, k int) float64 {
	r, _ := vecs.Dims()
	best, bestAbs := 0.0, 0.0
	for j := 0; j < r; j++ {
		v := vecs.At(j, k)
		if a := math.Abs(v); a > bestAbs {
			best, bestAbs = v, a
		}
	}
	if best < 0 {
		return -1
	}
	return 1
}

// casewiseRows returns the admitted rows of the window ending at t, judged
// jointly across every x column.
func casewiseRows(x *panel.Panel, c *call, t int) []int {
	start, end := c.ix.Bounds(t)
	cols := allColumns(x.Cols)
	var rows []int
	for i := start; i <= end; i++ {
		if c.pol.Mask.RowValid(i, cols) {
			rows = append(rows, i)
		}
	}
	return rows
}

// windowMoment builds the weighted moment matrix of the x columns over the
// given rows of the window ending at t: covariance when corrected is set
// (bias-corrected denominator), correlation when scale is set, and the raw
// weighted cross-product matrix otherwise. Returns nil for degenerate
// windows (nonpositive denominator or zero variance under scaling).
func windowMoment(x *panel.Panel, c *call, t int, rows []int, center, scale, corrected bool) *mat.SymDense {
	p := x.Cols

	var sumw, sumw2 float64
	means := make([]float64, p)
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		sumw += w
		sumw2 += w * w
		for j := 0; j < p; j++ {
			means[j] += w * x.At(i, j)
		}
	}
	if sumw == 0 {
		return nil
	}
	for j := range means {
		if center {
			means[j] /= sumw
		} else {
			means[j] = 0
		}
	}

	num := mat.NewSymDense(p, nil)
	d := make([]float64, p)
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		for j := 0; j < p; j++ {
			d[j] = x.At(i, j) - means[j]
		}
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				num.SetSym(a, b, num.At(a, b)+w*d[a]*d[b])
			}
		}
	}

	if scale {
		out := mat.NewSymDense(p, nil)
		for a := 0; a < p; a++ {
			if num.At(a, a) <= 0 {
				return nil
			}
		}
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				out.SetSym(a, b, num.At(a, b)/math.Sqrt(num.At(a, a)*num.At(b, b)))
			}
		}
		return out
	}

	if corrected {
		denom := sumw - sumw2/sumw
		if denom <= 0 {
			return nil
		}
		out := mat.NewSymDense(p, nil)
		for a := 0; a < p; a++ {
			for b := a; b < p; b++ {
				out.SetSym(a, b, num.At(a, b)/denom)
			}
		}
		return out
	}

	return num
}
