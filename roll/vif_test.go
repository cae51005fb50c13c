package roll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goroll/panel"
)

func TestVIFAtLeastOne(t *testing.T) {
	x := noisyPanel(60, 3, 43)
	out, err := VIF(x, strictConfig(10, 6))
	require.NoError(t, err)

	defined := 0
	for tt := 0; tt < x.Rows; tt++ {
		for j := 0; j < 3; j++ {
			v := out.At(tt, j)
			if !math.IsNaN(v) {
				assert.GreaterOrEqual(t, v, 1-1e-10, "t=%d j=%d", tt, j)
				defined++
			}
		}
	}
	assert.Greater(t, defined, 0)
}

func TestVIFUncorrelatedNearOne(t *testing.T) {
	// Orthogonal-in-window predictors carry no multicollinearity.
	x, err := panel.FromColumns(nil, [][]float64{
		{1, -1, 1, -1, 1, -1},
		{1, 1, -1, -1, 1, 1},
	})
	require.NoError(t, err)

	out, errVIF := VIF(x, strictConfig(4, 4))
	require.NoError(t, errVIF)
	assert.InDelta(t, 1, out.At(3, 0), 1e-10)
	assert.InDelta(t, 1, out.At(3, 1), 1e-10)
}

func TestVIFSingularWindow(t *testing.T) {
	// Identical predictors: correlation matrix is singular, the row goes
	// missing without failing the call.
	x, err := panel.FromColumns(nil, [][]float64{
		{1, 2, 3, 4},
		{1, 2, 3, 4},
	})
	require.NoError(t, err)

	out, errVIF := VIF(x, strictConfig(3, 3))
	require.NoError(t, errVIF)
	for tt := 0; tt < x.Rows; tt++ {
		for j := 0; j < 2; j++ {
			assert.True(t, math.IsNaN(out.At(tt, j)), "t=%d j=%d", tt, j)
		}
	}
}

func TestVIFNARestore(t *testing.T) {
	x, err := panel.FromColumns(nil, [][]float64{
		{2, -1, 1, 2, math.NaN(), 3},
		{1, 1, -1, -1, 1, 2},
	})
	require.NoError(t, err)

	cfg := strictConfig(4, 3)
	cfg.NARestore = true
	out, errVIF := VIF(x, cfg)
	require.NoError(t, errVIF)

	// The window at t=4 stays eligible on its three complete rows, but the
	// missing source cell re-blanks its own output column only.
	assert.True(t, math.IsNaN(out.At(4, 0)))
	assert.False(t, math.IsNaN(out.At(4, 1)))
}

func TestVIFMatchesInverseCorrelationDiagonal(t *testing.T) {
	x := noisyPanel(40, 2, 47)
	cfg := strictConfig(8, 8)

	vif, err := VIF(x, cfg)
	require.NoError(t, err)
	cor, err := Cor(x, withCasewise(strictConfig(8, 8)))
	require.NoError(t, err)

	for tt := 0; tt < x.Rows; tt++ {
		r := cor.At(tt, 0, 1)
		v := vif.At(tt, 0)
		if math.IsNaN(v) || math.IsNaN(r) {
			continue
		}
		// For two variables, VIF = 1/(1-r^2).
		assert.InDelta(t, 1/(1-r*r), v, 1e-8, "t=%d", tt)
	}
}
