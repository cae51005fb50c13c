package roll

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// Lm computes rolling weighted least-squares regressions of each y column on
// the x columns, solving the weighted normal equations X'WX b = X'Wy once
// per window. Regressions use complete observations: a row counts only when
// every x column and the y column are valid. Rank-deficient windows produce
// missing coefficients and R-squared for that time index only.
func Lm(x, y *panel.Panel, cfg *Config) (*LmResult, error) {
	if y.Rows != x.Rows {
		return nil, fmt.Errorf("%w: x has %d, y has %d", ErrDimension, x.Rows, y.Rows)
	}
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	maskY := window.NewMask(y)
	res := newLmResult(x, y, cfg.Intercept)

	// One output unit per time index; both partition axes schedule over t.
	parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
		for t := s; t < e; t++ {
			for ycol := 0; ycol < y.Cols; ycol++ {
				lmCell(x, y, c, maskY, res, t, ycol)
			}
		}
	})

	return res, nil
}

// allColumns returns the index set {0, ..., p-1}.
func allColumns(p int) []int {
	cols := make([]int, p)
	for j := range cols {
		cols[j] = j
	}
	return cols
}

// newLmResult allocates NaN-filled coefficient and R-squared panels.
func newLmResult(x, y *panel.Panel, intercept bool) *LmResult {
	m := x.Cols
	if intercept {
		m++
	}
	names := coefficientNames(x, intercept)

	coefs := make([]*panel.Panel, y.Cols)
	for j := range coefs {
		coefs[j] = panel.Missing(x.Rows, m)
		coefs[j].Names = names
	}
	r2 := panel.Missing(x.Rows, y.Cols)
	r2.Names = y.Names
	return &LmResult{Coefficients: coefs, RSquared: r2}
}

func coefficientNames(x *panel.Panel, intercept bool) []string {
	var names []string
	if intercept {
		names = append(names, "(Intercept)")
	}
	for j := 0; j < x.Cols; j++ {
		names = append(names, x.Name(j))
	}
	return names
}

// lmCell solves one window regression for (t, ycol).
func lmCell(x, y *panel.Panel, c *call, maskY *window.Mask, res *LmResult, t, ycol int) {
	p := x.Cols
	m := p
	if c.cfg.Intercept {
		m++
	}
	start, end := c.ix.Bounds(t)
	xcols := allColumns(p)

	// Admitted rows: complete across every x column and the y column.
	var rows []int
	for i := start; i <= end; i++ {
		if c.pol.Admit(i, xcols) && maskY.Valid(i, ycol) {
			rows = append(rows, i)
		}
	}
	if !c.pol.Eligible(len(rows)) || len(rows) < m {
		return
	}

	xtx := mat.NewSymDense(m, nil)
	xty := mat.NewVecDense(m, nil)
	d := make([]float64, m)
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		design(x, i, c.cfg.Intercept, d)
		yv := y.At(i, ycol)
		for k1 := 0; k1 < m; k1++ {
			for k2 := k1; k2 < m; k2++ {
				xtx.SetSym(k1, k2, xtx.At(k1, k2)+w*d[k1]*d[k2])
			}
			xty.SetVec(k1, xty.AtVec(k1)+w*d[k1]*yv)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(xtx) {
		return
	}
	beta := mat.NewVecDense(m, nil)
	if err := chol.SolveVecTo(beta, xty); err != nil {
		return
	}

	r2 := rSquared(x, y, c, rows, t, ycol, beta)

	coefs := res.Coefficients[ycol]
	for k := 0; k < m; k++ {
		coefs.Set(t, k, beta.AtVec(k))
	}
	res.RSquared.Set(t, ycol, r2)
}

// design fills d with the regression row for observation i: an optional
// leading 1 followed by the x values.
func design(x *panel.Panel, i int, intercept bool, d []float64) {
	k := 0
	if intercept {
		d[k] = 1
		k++
	}
	for j := 0; j < x.Cols; j++ {
		d[k] = x.At(i, j)
		k++
	}
}

// rSquared computes the weighted coefficient of determination over the
// admitted rows. The total sum of squares is taken about the weighted mean
// of y when an intercept is present, about zero otherwise.
func rSquared(x, y *panel.Panel, c *call, rows []int, t, ycol int, beta *mat.VecDense) float64 {
	m := beta.Len()
	d := make([]float64, m)

	ybar := 0.0
	if c.cfg.Intercept {
		var sumy, sumw float64
		for _, i := range rows {
			w := window.WeightAt(c.weights, t, i)
			sumy += w * y.At(i, ycol)
			sumw += w
		}
		if sumw == 0 {
			return math.NaN()
		}
		ybar = sumy / sumw
	}

	var rss, tss float64
	for _, i := range rows {
		w := window.WeightAt(c.weights, t, i)
		design(x, i, c.cfg.Intercept, d)
		fit := 0.0
		for k := 0; k < m; k++ {
			fit += beta.AtVec(k) * d[k]
		}
		yv := y.At(i, ycol)
		rss += w * (yv - fit) * (yv - fit)
		tss += w * (yv - ybar) * (yv - ybar)
	}
	if tss == 0 {
		return math.NaN()
	}
	return 1 - rss/tss
}
