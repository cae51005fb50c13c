package roll

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/parallel"
	"github.com/sartorproj/goroll/window"
)

// elementKernel evaluates one output cell from the valid values of its
// window, the weights aligned to them, and the current source value.
type elementKernel func(vals, wts []float64, cur float64, cfg *Config) float64

// rollElementwise runs an elementwise kernel over every (t, j) cell. Each
// worker owns a disjoint set of cells and its own scratch buffers; the
// gather order inside a window is always oldest to newest, so the
// accumulation order is fixed regardless of partitioning.
func rollElementwise(x *panel.Panel, cfg *Config, k elementKernel) (*panel.Panel, error) {
	c, err := newCall(x, cfg)
	if err != nil {
		return nil, err
	}

	out := panel.Missing(x.Rows, x.Cols)
	out.Names = x.Names

	cell := func(t, j int, vals, wts []float64) {
		start, end := c.ix.Bounds(t)
		group := []int{j}
		vals, wts = vals[:0], wts[:0]
		for i := start; i <= end; i++ {
			if c.pol.Admit(i, group) {
				vals = append(vals, x.At(i, j))
				wts = append(wts, window.WeightAt(c.weights, t, i))
			}
		}
		if !c.pol.Eligible(len(vals)) {
			return
		}
		out.Set(t, j, c.pol.Restore(k(vals, wts, x.At(t, j), cfg), x.At(t, j)))
	}

	if cfg.Partition == parallel.ByVariable {
		parallel.Run(x.Cols, cfg.Workers, func(s, e int) {
			vals := make([]float64, 0, cfg.Width)
			wts := make([]float64, 0, cfg.Width)
			for j := s; j < e; j++ {
				for t := 0; t < x.Rows; t++ {
					cell(t, j, vals, wts)
				}
			}
		})
	} else {
		parallel.Run(x.Rows, cfg.Workers, func(s, e int) {
			vals := make([]float64, 0, cfg.Width)
			wts := make([]float64, 0, cfg.Width)
			for t := s; t < e; t++ {
				for j := 0; j < x.Cols; j++ {
					cell(t, j, vals, wts)
				}
			}
		})
	}

	return out, nil
}

// weightedSum returns the weighted sum and the weight totals of one window.
func weightedSum(vals, wts []float64) (sum, sumw, sumw2 float64) {
	return floats.Dot(wts, vals), floats.Sum(wts), floats.Dot(wts, wts)
}

// weightedVariance computes the window variance about the weighted mean
// (or about zero when center is false), using the bias-corrected denominator
// sumw - sumw2/sumw. Under equal unit weights this reduces to the
// Bessel-corrected sample variance.
func weightedVariance(vals, wts []float64, center bool) float64 {
	sum, sumw, sumw2 := weightedSum(vals, wts)
	if sumw == 0 {
		return math.NaN()
	}
	m := 0.0
	if center {
		m = sum / sumw
	}
	num := 0.0
	for i, v := range vals {
		d := v - m
		num += wts[i] * d * d
	}
	denom := sumw - sumw2/sumw
	if denom <= 0 {
		return math.NaN()
	}
	return num / denom
}

// Sum computes the rolling weighted sum of each panel column.
func Sum(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, wts []float64, _ float64, _ *Config) float64 {
		sum, _, _ := weightedSum(vals, wts)
		return sum
	})
}

// Prod computes the rolling product of each panel column. The product is the
// plain cumulative product of the valid window values; weights contribute
// only through validity and min_obs gating.
func Prod(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, _ []float64, _ float64, _ *Config) float64 {
		prod := 1.0
		for _, v := range vals {
			prod *= v
		}
		return prod
	})
}

// Mean computes the rolling weighted mean of each panel column.
func Mean(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, wts []float64, _ float64, _ *Config) float64 {
		sum, sumw, _ := weightedSum(vals, wts)
		if sumw == 0 {
			return math.NaN()
		}
		return sum / sumw
	})
}

// Var computes the rolling weighted variance of each panel column. With
// Center false the variance is taken about zero.
func Var(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, wts []float64, _ float64, cfg *Config) float64 {
		return weightedVariance(vals, wts, cfg.Center)
	})
}

// SD computes the rolling weighted standard deviation of each panel column.
func SD(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, wts []float64, _ float64, cfg *Config) float64 {
		return math.Sqrt(weightedVariance(vals, wts, cfg.Center))
	})
}

// Scale standardizes the newest observation of each window: subtract the
// window's weighted mean when Center is set, then divide by the window's
// standard deviation when Scale is set.
func Scale(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, wts []float64, cur float64, cfg *Config) float64 {
		m := 0.0
		if cfg.Center {
			sum, sumw, _ := weightedSum(vals, wts)
			if sumw == 0 {
				return math.NaN()
			}
			m = sum / sumw
		}
		v := cur - m
		if cfg.Scale {
			sd := math.Sqrt(weightedVariance(vals, wts, cfg.Center))
			if sd == 0 || math.IsNaN(sd) {
				return math.NaN()
			}
			v /= sd
		}
		return v
	})
}
