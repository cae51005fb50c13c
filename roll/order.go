package roll

import (
	"math"
	"sort"

	"github.com/sartorproj/goroll/panel"
)

// Order statistics operate on the valid window values directly; weights
// contribute only through validity and min_obs gating.

// Min computes the rolling minimum of each panel column.
func Min(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, _ []float64, _ float64, _ *Config) float64 {
		if len(vals) == 0 {
			return math.NaN()
		}
		min := vals[0]
		for _, v := range vals[1:] {
			if v < min {
				min = v
			}
		}
		return min
	})
}

// Max computes the rolling maximum of each panel column.
func Max(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, _ []float64, _ float64, _ *Config) float64 {
		if len(vals) == 0 {
			return math.NaN()
		}
		max := vals[0]
		for _, v := range vals[1:] {
			if v > max {
				max = v
			}
		}
		return max
	})
}

// Median computes the rolling median of each panel column.
func Median(x *panel.Panel, cfg *Config) (*panel.Panel, error) {
	return rollElementwise(x, cfg, func(vals, _ []float64, _ float64, _ *Config) float64 {
		n := len(vals)
		if n == 0 {
			return math.NaN()
		}
		sorted := make([]float64, n)
		copy(sorted, vals)
		sort.Float64s(sorted)
		if n%2 == 0 {
			return (sorted[n/2-1] + sorted[n/2]) / 2
		}
		return sorted[n/2]
	})
}
