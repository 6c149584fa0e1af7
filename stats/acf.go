// Package stats provides residual diagnostics for fitted forecasting models.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ACF calculates the sample autocorrelation function of values for lags 0 to maxLag.
// maxLag is capped at len(values)-1. Returns nil for an empty or constant input.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	denom := 0.0
	for _, v := range values {
		denom += (v - mean) * (v - mean)
	}
	if denom == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / denom
	}

	return acf
}

// ACFResult holds autocorrelations with their 95% confidence bound.
type ACFResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // ±1.96/sqrt(n)
}

// ACFWithConfidence calculates ACF with confidence bounds.
func ACFWithConfidence(values []float64, maxLag int) *ACFResult {
	acf := ACF(values, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	return &ACFResult{
		Lags:       lags,
		Values:     acf,
		ConfBounds: 1.96 / math.Sqrt(float64(len(values))),
	}
}

// SignificantLags returns the lags (excluding lag 0) whose autocorrelation exceeds confBound in magnitude.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
