package roll

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
)

// VIF computes rolling variance inflation factors: the diagonal of the
// inverse of each window's weighted correlation matrix, one value per time
// index and variable. A singular correlation matrix yields a missing row
// for that time index only. Values are >= 1 wherever defined.
func VIF(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	p := x.Cols
	out := panel.Missing(x.Rows, p)
	out.Names = x.Names

	parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
		for t := s; t < e; t++ {
			rows := casewiseRows(x, c, t)
			if !c.pol.Eligible(len(rows)) {
				continue
			}
			corr := windowMoment(x, c, t, rows, true, true, false)
			if corr == nil {
				continue
			}

			var chol mat.Cholesky
			if !chol.Factorize(corr) {
				continue
			}
			var inv mat.SymDense
			if err := chol.InverseTo(&inv); err != nil {
				continue
			}
			for j := 0; j < p; j++ {
				out.Set(t, j, c.pol.Restore(inv.At(j, j), x.At(t, j)))
			}
		}
	})

	return out, nil
}
