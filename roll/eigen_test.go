package roll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goroll/panel"
)

func covConfig(width, minObs int) *Config {
	cfg := strictConfig(width, minObs)
	cfg.Scale = false
	return cfg
}

func TestEigenSingleVariable(t *testing.T) {
	res, err := Eigen(countingPanel(), covConfig(3, 3))
	require.NoError(t, err)

	// Covariance of a single variable is its variance; the eigenvector is 1.
	for tt := 2; tt < 5; tt++ {
		assert.InDelta(t, 1, res.Values.At(tt, 0), 1e-10)
		assert.InDelta(t, 1, res.Vectors.At(tt, 0, 0), 1e-10)
	}
	assert.True(t, math.IsNaN(res.Values.At(1, 0)))
}

func TestEigenCorrelationMatrix(t *testing.T) {
	// Perfectly correlated columns: correlation matrix [[1,1],[1,1]] with
	// eigenvalues 2 and 0.
	x, err := panel.FromColumns(nil, [][]float64{
		{1, 2, 3, 4, 5},
		{2, 4, 6, 8, 10},
	})
	require.NoError(t, err)

	cfg := strictConfig(3, 3) // Scale is set: correlation matrix
	res, errEig := Eigen(x, cfg)
	require.NoError(t, errEig)

	assert.InDelta(t, 2, res.Values.At(4, 0), 1e-10)
	assert.InDelta(t, 0, res.Values.At(4, 1), 1e-10)

	// Leading eigenvector of an equicorrelation matrix, sign-fixed positive.
	s := 1 / math.Sqrt2
	assert.InDelta(t, s, res.Vectors.At(4, 0, 0), 1e-10)
	assert.InDelta(t, s, res.Vectors.At(4, 1, 0), 1e-10)
}

func TestEigenValuesDescending(t *testing.T) {
	x := noisyPanel(50, 3, 31)
	res, err := Eigen(x, covConfig(10, 5))
	require.NoError(t, err)

	for tt := 0; tt < x.Rows; tt++ {
		if math.IsNaN(res.Values.At(tt, 0)) {
			continue
		}
		for k := 1; k < 3; k++ {
			assert.GreaterOrEqual(t, res.Values.At(tt, k-1), res.Values.At(tt, k), "t=%d", tt)
		}
	}
}

func TestEigenSignConvention(t *testing.T) {
	x := noisyPanel(50, 3, 37)
	res, err := Eigen(x, covConfig(10, 5))
	require.NoError(t, err)

	for tt := 0; tt < x.Rows; tt++ {
		if math.IsNaN(res.Vectors.At(tt, 0, 0)) {
			continue
		}
		for k := 0; k < 3; k++ {
			best, bestAbs := 0.0, 0.0
			for j := 0; j < 3; j++ {
				v := res.Vectors.At(tt, j, k)
				if a := math.Abs(v); a > bestAbs {
					best, bestAbs = v, a
				}
			}
			assert.GreaterOrEqual(t, best, 0.0, "t=%d k=%d", tt, k)
		}
	}
}

func TestEigenTraceEqualsTotalVariance(t *testing.T) {
	x := noisyPanel(50, 3, 41)
	cfg := covConfig(10, 10) // full windows only, casewise counts
	res, err := Eigen(x, cfg)
	require.NoError(t, err)
	cov, err := Cov(x, withCasewise(covConfig(10, 10)))
	require.NoError(t, err)

	for tt := 0; tt < x.Rows; tt++ {
		if math.IsNaN(res.Values.At(tt, 0)) {
			continue
		}
		trace, sum := 0.0, 0.0
		for k := 0; k < 3; k++ {
			trace += cov.At(tt, k, k)
			sum += res.Values.At(tt, k)
		}
		assert.InDelta(t, trace, sum, 1e-8, "t=%d", tt)
	}
}

func withCasewise(cfg *Config) *Config {
	cfg.CompleteObs = true
	return cfg
}
