package window

import (
	"errors"
	"fmt"
)

// ErrWidth is returned when the window width is outside [1, n].
var ErrWidth = errors.New("window: width must be between 1 and the number of rows")

// Indexer yields the trailing index range for each output position of a
// series of length N with windows of the given Width.
type Indexer struct {
	N     int
	Width int
}

// NewIndexer creates an indexer for a series of length n.
func NewIndexer(n, width int) (*Indexer, error) {
	if width < 1 || width > n {
		return nil, fmt.Errorf("%w: width %d, rows %d", ErrWidth, width, n)
	}
	return &Indexer{N: n, Width: width}, nil
}

// Bounds returns the inclusive range [start, end] of the window ending at t.
// Windows before position Width-1 are partial.
func (ix *Indexer) Bounds(t int) (start, end int) {
	start = t - ix.Width + 1
	if start < 0 {
		start = 0
	}
	return start, t
}

// Size returns the number of observations covered by the window ending at t.
func (ix *Indexer) Size(t int) int {
	start, end := ix.Bounds(t)
	return end - start + 1
}
