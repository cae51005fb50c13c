// Package panel provides panel data structures and utilities.
//
// This package includes the Panel type for representing n observations of p
// variables, along with functions for construction, access, and CSV loading.
// Missing cells are represented as NaN.
//
// # Creating a Panel
//
// Create a panel from a row-major slice:
//
//	values := []float64{1, 10, 2, 20, 3, 30}
//	p, err := panel.New(3, 2, values)
//
// Or from columns:
//
//	p, err := panel.FromColumns(
//	    []string{"price", "volume"},
//	    [][]float64{prices, volumes},
//	)
//
// A single series:
//
//	p := panel.FromColumn(values)
//
// # Loading from CSV
//
// Load selected columns from a CSV file:
//
//	opts := panel.DefaultCSVOptions()
//	opts.Columns = []string{"open", "close"}
//	p, err := panel.LoadCSV("prices.csv", opts)
//
// Empty cells and NA/NaN/null markers load as missing values.
//
// # Access
//
// Read and write cells, columns, and rows:
//
//	v := p.At(i, j)
//	col := p.Column(j)
//	row := p.Row(i)
//	sub := p.Slice(10, 50)
package panel
