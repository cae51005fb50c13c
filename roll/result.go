package roll

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goroll/panel"
)

// MatrixSeries holds one Dim x Dim matrix per time index, stored as a flat
// row-major stack. Entries of ineligible windows are NaN.
type MatrixSeries struct {
	N      int
	Dim    int
	Names  []string // variable labels, optional
	Values []float64
}

// newMatrixSeries allocates a series of n Dim x Dim matrices filled with NaN.
func newMatrixSeries(n, dim int, names []string) *MatrixSeries {
	values := make([]float64, n*dim*dim)
	for i := range values {
		values[i] = math.NaN()
	}
	return &MatrixSeries{N: n, Dim: dim, Names: names, Values: values}
}

// At returns entry (i, j) of the matrix at time index t.
func (ms *MatrixSeries) At(t, i, j int) float64 {
	return ms.Values[(t*ms.Dim+i)*ms.Dim+j]
}

// Set assigns entry (i, j) of the matrix at time index t.
func (ms *MatrixSeries) Set(t, i, j int, v float64) {
	ms.Values[(t*ms.Dim+i)*ms.Dim+j] = v
}

// Matrix returns a copy of the matrix at time index t.
func (ms *MatrixSeries) Matrix(t int) *mat.Dense {
	data := make([]float64, ms.Dim*ms.Dim)
	copy(data, ms.Values[t*ms.Dim*ms.Dim:(t+1)*ms.Dim*ms.Dim])
	return mat.NewDense(ms.Dim, ms.Dim, data)
}

// LmResult holds rolling regression output: one coefficient panel per y
// column (rows are time indices, columns are the intercept followed by the
// x variables) and an R-squared panel with one column per y column.
type LmResult struct {
	Coefficients []*panel.Panel
	RSquared     *panel.Panel
}

// EigenResult holds rolling eigen-decomposition output. Values holds the
// eigenvalues in descending order, one row per time index. Column k of
// Vectors at time t is the eigenvector paired with Values.At(t, k), sign
// fixed so its largest-magnitude entry is positive.
type EigenResult struct {
	Values  *panel.Panel
	Vectors *MatrixSeries
}
