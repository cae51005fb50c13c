package panel

import (
	"errors"
	"fmt"
	"math"
)

// Panel represents n observations of p variables in row-major order.
// Missing cells are NaN. A Panel handed to the roll package is treated as
// read-only for the duration of the call.
type Panel struct {
	Rows   int
	Cols   int
	Names  []string // column labels, optional (len == Cols when set)
	Values []float64
}

// New creates a panel from a row-major value slice.
func New(rows, cols int, values []float64) (*Panel, error) {
	if rows < 0 || cols < 1 {
		return nil, errors.New("panel: rows must be >= 0 and cols >= 1")
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("panel: expected %d values, got %d", rows*cols, len(values))
	}
	return &Panel{Rows: rows, Cols: cols, Values: values}, nil
}

// FromColumn creates a single-column panel from a series of values.
func FromColumn(values []float64) *Panel {
	return &Panel{Rows: len(values), Cols: 1, Values: values}
}

// FromColumns creates a panel from named columns of equal length.
func FromColumns(names []string, cols [][]float64) (*Panel, error) {
	if len(cols) == 0 {
		return nil, errors.New("panel: at least one column is required")
	}
	if names != nil && len(names) != len(cols) {
		return nil, errors.New("panel: names and columns must have the same length")
	}
	rows := len(cols[0])
	for _, c := range cols {
		if len(c) != rows {
			return nil, errors.New("panel: all columns must have the same length")
		}
	}
	p := Filled(rows, len(cols), 0)
	p.Names = names
	for j, c := range cols {
		for i, v := range c {
			p.Values[i*p.Cols+j] = v
		}
	}
	return p, nil
}

// Filled creates a panel with every cell set to v.
func Filled(rows, cols int, v float64) *Panel {
	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = v
	}
	return &Panel{Rows: rows, Cols: cols, Values: values}
}

// Missing creates a panel with every cell missing.
func Missing(rows, cols int) *Panel {
	return Filled(rows, cols, math.NaN())
}

// At returns the value at row i, column j.
func (p *Panel) At(i, j int) float64 {
	return p.Values[i*p.Cols+j]
}

// Set assigns the value at row i, column j.
func (p *Panel) Set(i, j int, v float64) {
	p.Values[i*p.Cols+j] = v
}

// IsMissing reports whether the cell at row i, column j is missing.
func (p *Panel) IsMissing(i, j int) bool {
	return math.IsNaN(p.At(i, j))
}

// Column returns a copy of column j.
func (p *Panel) Column(j int) []float64 {
	out := make([]float64, p.Rows)
	for i := 0; i < p.Rows; i++ {
		out[i] = p.At(i, j)
	}
	return out
}

// Row returns a copy of row i.
func (p *Panel) Row(i int) []float64 {
	out := make([]float64, p.Cols)
	copy(out, p.Values[i*p.Cols:(i+1)*p.Cols])
	return out
}

// Name returns the label of column j, or a generated "x<j+1>" label when the
// panel carries no names.
func (p *Panel) Name(j int) string {
	if p.Names != nil && j < len(p.Names) {
		return p.Names[j]
	}
	return fmt.Sprintf("x%d", j+1)
}

// Copy creates a deep copy of the panel.
func (p *Panel) Copy() *Panel {
	values := make([]float64, len(p.Values))
	copy(values, p.Values)
	var names []string
	if p.Names != nil {
		names = make([]string, len(p.Names))
		copy(names, p.Names)
	}
	return &Panel{Rows: p.Rows, Cols: p.Cols, Names: names, Values: values}
}

// Slice returns a copy of rows start to end (exclusive).
func (p *Panel) Slice(start, end int) *Panel {
	if start < 0 {
		start = 0
	}
	if end > p.Rows {
		end = p.Rows
	}
	if start >= end {
		return &Panel{Rows: 0, Cols: p.Cols, Names: p.Names, Values: []float64{}}
	}
	values := make([]float64, (end-start)*p.Cols)
	copy(values, p.Values[start*p.Cols:end*p.Cols])
	return &Panel{Rows: end - start, Cols: p.Cols, Names: p.Names, Values: values}
}

// ValidCount returns the number of non-missing cells in column j.
func (p *Panel) ValidCount(j int) int {
	count := 0
	for i := 0; i < p.Rows; i++ {
		if !p.IsMissing(i, j) {
			count++
		}
	}
	return count
}
