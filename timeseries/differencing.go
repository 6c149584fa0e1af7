package timeseries

import (
	"fmt"

	"github.com/sartorproj/goforecast"
)

// Diff returns the first differences of values: out[i-1] = values[i] - values[i-1].
// The result is a fresh slice of length len(values)-1.
func Diff(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("timeseries: differencing needs at least 2 values, got %d: %w", len(values), goforecast.ErrInvalidInput)
	}

	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out, nil
}

// InvDiff reconstructs levels from first differences anchored at init:
// out[0] = init, out[i] = out[i-1] + diffs[i-1]. The result has len(diffs)+1 values.
//
// Reconstruction is a running sum, so rounding error accumulates linearly with the number of steps.
func InvDiff(diffs []float64, init float64) []float64 {
	out := make([]float64, len(diffs)+1)
	out[0] = init
	for i := 1; i < len(out); i++ {
		out[i] = out[i-1] + diffs[i-1]
	}
	return out
}
