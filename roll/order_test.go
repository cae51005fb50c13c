package roll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goroll/panel"
)

func TestMin(t *testing.T) {
	x := panel.FromColumn([]float64{3, 1, 4, 1, 5})
	out, err := Min(x, strictConfig(3, 3))
	require.NoError(t, err)
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 1, 1, 1}, out, 0)
}

func TestMax(t *testing.T) {
	x := panel.FromColumn([]float64{3, 1, 4, 1, 5})
	out, err := Max(x, strictConfig(3, 3))
	require.NoError(t, err)
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 4, 4, 5}, out, 0)
}

func TestMedian(t *testing.T) {
	x := panel.FromColumn([]float64{3, 1, 4, 1, 5})
	out, err := Median(x, strictConfig(3, 3))
	require.NoError(t, err)
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 3, 1, 4}, out, 0)
}

func TestMedianEvenCount(t *testing.T) {
	x := panel.FromColumn([]float64{1, 2, 3, 4})
	out, err := Median(x, strictConfig(4, 4))
	require.NoError(t, err)
	require.InDelta(t, 2.5, out.At(3, 0), 1e-12)
}

func TestMedianSkipsMissing(t *testing.T) {
	x := panel.FromColumn([]float64{1, math.NaN(), 3})
	out, err := Median(x, strictConfig(3, 2))
	require.NoError(t, err)
	require.InDelta(t, 2, out.At(2, 0), 1e-12)
}
