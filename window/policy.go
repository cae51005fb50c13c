package window

import (
	"math"

	"github.com/sartorproj/goroll/panel"
)

// Mask records per-cell validity for a panel. It is computed once at the
// start of a call and never mutated by kernels.
type Mask struct {
	rows, cols int
	valid      []bool
}

// NewMask builds a validity mask from a panel: a cell is valid where the
// panel cell is not missing.
func NewMask(p *panel.Panel) *Mask {
	m := &Mask{rows: p.Rows, cols: p.Cols, valid: make([]bool, p.Rows*p.Cols)}
	for i := range m.valid {
		m.valid[i] = !math.IsNaN(p.Values[i])
	}
	return m
}

// Valid reports whether the cell at row i, column j is valid.
func (m *Mask) Valid(i, j int) bool {
	return m.valid[i*m.cols+j]
}

// RowValid reports whether row i is valid in every one of the given columns.
func (m *Mask) RowValid(i int, cols []int) bool {
	for _, j := range cols {
		if !m.valid[i*m.cols+j] {
			return false
		}
	}
	return true
}

// Cols returns the number of columns covered by the mask.
func (m *Mask) Cols() int { return m.cols }

// Policy is the missing-data policy shared by every kernel: which rows count
// toward a windowed aggregate, how many valid observations a window holds,
// and whether outputs are re-blanked where their source was missing.
type Policy struct {
	Mask      *Mask
	Casewise  bool // complete_obs: participants judged jointly across the statistic's column group
	NARestore bool
	MinObs    int
}

// NewPolicy builds the policy for one call.
func NewPolicy(p *panel.Panel, casewise, naRestore bool, minObs int) *Policy {
	return &Policy{Mask: NewMask(p), Casewise: casewise, NARestore: naRestore, MinObs: minObs}
}

// Group resolves the column set whose joint validity governs a statistic
// over the given participating columns: the participants themselves under
// pairwise mode, or every panel column under casewise mode. Single-variable
// statistics pass their own column and are unaffected by the mode.
func (pol *Policy) Group(participants ...int) []int {
	if !pol.Casewise || len(participants) < 2 {
		return participants
	}
	all := make([]int, pol.Mask.Cols())
	for j := range all {
		all[j] = j
	}
	return all
}

// Admit reports whether row i counts toward a statistic governed by the
// given column group.
func (pol *Policy) Admit(i int, group []int) bool {
	return pol.Mask.RowValid(i, group)
}

// Count returns the number of admitted rows in the inclusive range
// [start, end] for the given column group.
func (pol *Policy) Count(start, end int, group []int) int {
	count := 0
	for i := start; i <= end; i++ {
		if pol.Mask.RowValid(i, group) {
			count++
		}
	}
	return count
}

// Eligible reports whether a window with the given admitted count may emit a
// result.
func (pol *Policy) Eligible(count int) bool {
	return count >= pol.MinObs
}

// Restore re-blanks an output cell whose defining source cell was missing.
// With NARestore disabled it returns the computed value unchanged.
func (pol *Policy) Restore(out, src float64) float64 {
	if pol.NARestore && math.IsNaN(src) {
		return math.NaN()
	}
	return out
}
