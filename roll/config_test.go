package roll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goroll/window"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(5)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 1, cfg.MinObs)
	assert.True(t, cfg.Center)
	assert.True(t, cfg.Scale)
	assert.True(t, cfg.Intercept)
	assert.False(t, cfg.CompleteObs)
	assert.False(t, cfg.NARestore)
	assert.Equal(t, 0, cfg.Workers)
}

func TestConfigValidation(t *testing.T) {
	x := countingPanel()

	_, err := Mean(x, DefaultConfig(0))
	assert.ErrorIs(t, err, window.ErrWidth)

	_, err = Mean(x, DefaultConfig(6))
	assert.ErrorIs(t, err, window.ErrWidth, "width beyond the series length")

	cfg := DefaultConfig(3)
	cfg.Weights = []float64{1, 1}
	_, err = Mean(x, cfg)
	assert.ErrorIs(t, err, window.ErrWeights)

	cfg = DefaultConfig(3)
	cfg.MinObs = 0
	_, err = Mean(x, cfg)
	assert.ErrorIs(t, err, ErrMinObs)

	cfg = DefaultConfig(3)
	cfg.MinObs = 4
	_, err = Mean(x, cfg)
	assert.ErrorIs(t, err, ErrMinObs)

	cfg = DefaultConfig(3)
	cfg.Workers = -1
	_, err = Mean(x, cfg)
	assert.ErrorIs(t, err, ErrWorkers)
}

func TestConfigNilWeightsDefaultEqual(t *testing.T) {
	cfg := strictConfig(3, 3)
	a, err := Sum(countingPanel(), cfg)
	require.NoError(t, err)

	cfg = strictConfig(3, 3)
	cfg.Weights = window.EqualWeights(3)
	b, err := Sum(countingPanel(), cfg)
	require.NoError(t, err)

	assertSamePanel(t, a, b)
}
