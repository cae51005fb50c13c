package roll

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// PCR computes rolling principal-component regressions of each y column on
// the x columns. Per window, the weighted covariance of x is
// eigen-decomposed, x is projected onto the eigenvectors selected by comps
// (1-based indices into the descending eigenvalue order, in the order
// given), y is regressed on the resulting scores, and the score
// coefficients are mapped back to original-x-space coefficients through the
// selected loadings. Using every component reproduces Lm.
func PCR(x, y *panel.Panel, comps []int, cfg *Config) (*LmResult, error) {
	if y.Rows != x.Rows {
		return nil, fmt.Errorf("%w: x has %d, y has %d", ErrDimension, x.Rows, y.Rows)
	}
	if err := validateComps(comps, x.Cols); err != nil {
		return nil, err
	}
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	maskY := window.NewMask(y)
	res := newLmResult(x, y, cfg.Intercept)

	parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
		for t := s; t < e; t++ {
			for ycol := 0; ycol < y.Cols; ycol++ {
				pcrCell(x, y, c, maskY, res, comps, t, ycol)
			}
		}
	})

	return res, nil
}

func validateComps(comps []int, p int) error {
	if len(comps) == 0 {
		return fmt.Errorf("%w: none given", ErrComponents)
	}
	seen := make(map[int]bool, len(comps))
	for _, k := range comps {
		if k < 1 || k > p {
			return fmt.Errorf("%w: got %d with %d variables", ErrComponents, k, p)
		}
		if seen[k] {
			return fmt.Errorf("%w: %d repeated", ErrComponents, k)
		}
		seen[k] = true
	}
	return nil
}

// pcrCell solves one window principal-component regression for (t, ycol).
func pcrCell(x, y *panel.Panel, c *call, maskY *window.Mask, res *LmResult, comps []int, t, ycol int) {
	p := x.Cols
	nc := len(comps)
	intercept := c.cfg.Intercept

	start, end := c.ix.Bounds(t)
	xcols := allColumns(p)
	var rows []int
	for i := start; i <= end; i++ {
		if c.pol.Admit(i, xcols) && maskY.Valid(i, ycol) {
			rows = append(rows, i)
		}
	}
	need := nc
	if intercept {
		need++
	}
	if !c.pol.Eligible(len(rows)) || len(rows) < need {
		return
	}

	// Weighted centers. Predictors and response are centered only when an
	// intercept is requested, so an interceptless fit matches interceptless
	// least squares.
	mx := make([]float64, p)
	my := 0.0
	if intercept {
		var sumw float64
		for _, i := range rows {
			w := window.WeightAt(c.weights, t, i)
			sumw += w
			for j := 0; j < p; j++ {
				mx[j] += w * x.At(i, j)
			}
			my += w * y.At(i, ycol)
		}
		if sumw == 0 {
			return
		}
		for j := range mx {
			mx[j] /= sumw
		}
		my /= sumw
	}

	sym := windowMoment(x, c, t, rows, intercept, false, false)
	if sym == nil {
		return
	}
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Selected loadings, eigenvalue order descending, signs fixed as in Eigen.
	load := mat.NewDense(p, nc, nil)
	for k, comp := range comps {
		src := p - comp // comp is 1-based into the descending order; columns are ascending
		sign := vectorSign(&vecs, src)
		for j := 0; j < p; j++ {
			load.Set(j, k, sign*vecs.At(j, src))
		}
	}

	// Regress y on the component scores. Centered scores have zero weighted
	// mean, so no intercept column is needed here.
	stx := mat.NewSymDense(nc, nil)
	sty := mat.NewVecDense(nc, nil)
	score := make([]float64, nc)
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		scoreRow(x, load, mx, i, score)
		yd := y.At(i, ycol) - my
		for k1 := 0; k1 < nc; k1++ {
			for k2 := k1; k2 < nc; k2++ {
				stx.SetSym(k1, k2, stx.At(k1, k2)+w*score[k1]*score[k2])
			}
			sty.SetVec(k1, sty.AtVec(k1)+w*score[k1]*yd)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(stx) {
		return
	}
	gamma := mat.NewVecDense(nc, nil)
	if err := chol.SolveVecTo(gamma, sty); err != nil {
		return
	}

	// Back-transform score coefficients into x-space.
	beta := make([]float64, p)
	for j := 0; j < p; j++ {
		for k := 0; k < nc; k++ {
			beta[j] += load.At(j, k) * gamma.AtVec(k)
		}
	}
	b0 := 0.0
	if intercept {
		b0 = my
		for j := 0; j < p; j++ {
			b0 -= mx[j] * beta[j]
		}
	}

	// R-squared over the admitted rows, about the weighted mean of y when an
	// intercept is present.
	var rss, tss float64
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		scoreRow(x, load, mx, i, score)
		fit := my
		for k := 0; k < nc; k++ {
			fit += gamma.AtVec(k) * score[k]
		}
		yv := y.At(i, ycol)
		rss += w * (yv - fit) * (yv - fit)
		tss += w * (yv - my) * (yv - my)
	}
	r2 := math.NaN()
	if tss != 0 {
		r2 = 1 - rss/tss
	}

	coefs := res.Coefficients[ycol]
	k := 0
	if intercept {
		coefs.Set(t, k, b0)
		k++
	}
	for j := 0; j < p; j++ {
		coefs.Set(t, k+j, beta[j])
	}
	res.RSquared.Set(t, ycol, r2)
}

// scoreRow projects observation i onto the selected loadings.
func scoreRow(x *panel.Panel, load *mat.Dense, mx []float64, i int, score []float64) {
	p := x.Cols
	nc := len(score)
	for k := 0; k < nc; k++ {
		s := 0.0
		for j := 0; j < p; j++ {
			s += (x.At(i, j) - mx[j]) * load.At(j, k)
		}
		score[k] = s
	}
}
