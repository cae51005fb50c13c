// Package main demonstrates rolling statistics on a synthetic panel.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/sartorproj/goroll/panel"
	"github.com/sartorproj/goroll/roll"
	"github.com/sartorproj/goroll/window"
)

const (
	nObs  = 250
	width = 20
)

func main() {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("GoRoll Demonstration - Rolling Statistics")
	fmt.Println(strings.Repeat("=", 72))

	x, y := makePanels()

	cfg := roll.DefaultConfig(width)
	cfg.MinObs = width / 2
	cfg.Weights = window.ExpWeights(width, 0.96)

	fmt.Printf("\nPanel: %d observations x %d variables, window %d, min_obs %d\n",
		x.Rows, x.Cols, cfg.Width, cfg.MinObs)

	means, err := roll.Mean(x, cfg)
	if err != nil {
		fmt.Println("mean failed:", err)
		return
	}
	sds, _ := roll.SD(x, cfg)
	fmt.Println("\nRolling weighted mean and SD (last 5 positions, first variable):")
	for t := x.Rows - 5; t < x.Rows; t++ {
		fmt.Printf("  t=%3d  mean=%8.4f  sd=%8.4f\n", t, means.At(t, 0), sds.At(t, 0))
	}

	cor, _ := roll.Cor(x, cfg)
	fmt.Printf("\nRolling correlation matrix at t=%d:\n", x.Rows-1)
	printMatrix(cor, x.Rows-1)

	res, _ := roll.Lm(x, y, cfg)
	fmt.Printf("\nRolling regression at t=%d:\n", x.Rows-1)
	coefs := res.Coefficients[0]
	for k := 0; k < coefs.Cols; k++ {
		fmt.Printf("  %-12s %8.4f\n", coefs.Name(k), coefs.At(x.Rows-1, k))
	}
	fmt.Printf("  %-12s %8.4f\n", "R-squared", res.RSquared.At(x.Rows-1, 0))

	comps := []int{1, 2}
	pcr, _ := roll.PCR(x, y, comps, cfg)
	fmt.Printf("\nRolling PCR on components %v at t=%d:\n", comps, x.Rows-1)
	coefs = pcr.Coefficients[0]
	for k := 0; k < coefs.Cols; k++ {
		fmt.Printf("  %-12s %8.4f\n", coefs.Name(k), coefs.At(x.Rows-1, k))
	}

	eig, _ := roll.Eigen(x, cfg)
	fmt.Printf("\nRolling eigenvalues at t=%d: ", x.Rows-1)
	for k := 0; k < x.Cols; k++ {
		fmt.Printf("%8.4f", eig.Values.At(x.Rows-1, k))
	}
	fmt.Println()

	vif, _ := roll.VIF(x, cfg)
	fmt.Printf("\nRolling VIF at t=%d: ", x.Rows-1)
	for j := 0; j < x.Cols; j++ {
		fmt.Printf("%8.4f", vif.At(x.Rows-1, j))
	}
	fmt.Println()
}

// makePanels builds three correlated predictors with a sprinkling of missing
// cells, and a response driven by the first two.
func makePanels() (*panel.Panel, *panel.Panel) {
	rng := rand.New(rand.NewSource(42))

	cols := make([][]float64, 3)
	for j := range cols {
		cols[j] = make([]float64, nObs)
	}
	yvals := make([]float64, nObs)

	common := 0.0
	for i := 0; i < nObs; i++ {
		common = 0.9*common + rng.NormFloat64()
		cols[0][i] = common + 0.5*rng.NormFloat64()
		cols[1][i] = 0.7*common + rng.NormFloat64()
		cols[2][i] = rng.NormFloat64()
		yvals[i] = 1.5*cols[0][i] - 0.8*cols[1][i] + 0.3*rng.NormFloat64()

		if rng.Float64() < 0.02 {
			cols[rng.Intn(3)][i] = math.NaN()
		}
	}

	x, _ := panel.FromColumns([]string{"momentum", "value", "noise"}, cols)
	return x, panel.FromColumn(yvals)
}

func printMatrix(ms *roll.MatrixSeries, t int) {
	for i := 0; i < ms.Dim; i++ {
		fmt.Print(" ")
		for j := 0; j < ms.Dim; j++ {
			fmt.Printf(" %8.4f", ms.At(t, i, j))
		}
		fmt.Println()
	}
}
