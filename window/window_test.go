package window

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexer(t *testing.T) {
	ix, err := NewIndexer(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Width)

	_, err = NewIndexer(10, 0)
	assert.True(t, errors.Is(err, ErrWidth))

	_, err = NewIndexer(10, 11)
	assert.True(t, errors.Is(err, ErrWidth))
}

func TestBounds(t *testing.T) {
	ix, _ := NewIndexer(10, 3)

	start, end := ix.Bounds(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, 1, ix.Size(0))

	start, end = ix.Bounds(1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)

	start, end = ix.Bounds(5)
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, 3, ix.Size(5))
}

func TestEqualWeights(t *testing.T) {
	w := EqualWeights(4)
	assert.Equal(t, []float64{1, 1, 1, 1}, w)
}

func TestExpWeights(t *testing.T) {
	w := ExpWeights(3, 0.5)
	assert.InDelta(t, 0.25, w[0], 1e-12)
	assert.InDelta(t, 0.5, w[1], 1e-12)
	assert.Equal(t, 1.0, w[2], "newest observation is weighted 1")
}

func TestWeightAt(t *testing.T) {
	w := []float64{1, 2, 3}

	// Full window ending at t=5: rows 3, 4, 5 take weights oldest to newest.
	assert.Equal(t, 1.0, WeightAt(w, 5, 3))
	assert.Equal(t, 2.0, WeightAt(w, 5, 4))
	assert.Equal(t, 3.0, WeightAt(w, 5, 5))

	// Partial window ending at t=1: the most recent weights apply.
	assert.Equal(t, 2.0, WeightAt(w, 1, 0))
	assert.Equal(t, 3.0, WeightAt(w, 1, 1))
}
