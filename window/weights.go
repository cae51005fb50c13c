package window

import (
	"errors"
	"math"
)

// ErrWeights is returned when a weight vector does not match the window width.
var ErrWeights = errors.New("window: weights must have length equal to width")

// EqualWeights returns a weight vector of the given width with every
// observation weighted 1.
func EqualWeights(width int) []float64 {
	w := make([]float64, width)
	for i := range w {
		w[i] = 1
	}
	return w
}

// ExpWeights returns exponential-decay weights of the given width. The most
// recent observation is weighted 1 and each older observation is discounted
// by lambda, so w[i] = lambda^(width-1-i). Weights are aligned oldest to
// newest, matching the window convention.
func ExpWeights(width int, lambda float64) []float64 {
	w := make([]float64, width)
	for i := range w {
		w[i] = math.Pow(lambda, float64(width-1-i))
	}
	return w
}

// WeightAt returns the weight applying to row i of the window ending at t.
// Weights are a fixed shape anchored to the window's newest position: the
// last weight always applies to row t, regardless of how full the window is.
func WeightAt(weights []float64, t, i int) float64 {
	return weights[len(weights)-1-(t-i)]
}
