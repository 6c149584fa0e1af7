// Package timeseries provides the Series type, differencing and inverse differencing.
package timeseries

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goforecast"
)

// Series represents a time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values without timestamps.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("timeseries: %d timestamps for %d values: %w", len(timestamps), len(values), goforecast.ErrInvalidInput)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Last returns the most recent observation, or NaN for an empty series.
func (s *Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Validate reports an error if the series holds fewer than minLen values or any value is NaN or infinite.
func (s *Series) Validate(minLen int) error {
	if len(s.Values) < minLen {
		return fmt.Errorf("timeseries: need at least %d values, got %d: %w", minLen, len(s.Values), goforecast.ErrInvalidInput)
	}
	if floats.HasNaN(s.Values) {
		return fmt.Errorf("timeseries: series contains NaN: %w", goforecast.ErrInvalidInput)
	}
	for i, v := range s.Values {
		if math.IsInf(v, 0) {
			return fmt.Errorf("timeseries: value %d is infinite: %w", i, goforecast.ErrInvalidInput)
		}
	}
	return nil
}

// Diff calculates the first difference of the series. A series with fewer than two values yields an empty series.
// Each difference keeps the timestamp of its later observation.
func (s *Series) Diff() *Series {
	values, err := Diff(s.Values)
	if err != nil {
		return &Series{Values: []float64{}, Name: s.Name + "_diff"}
	}

	var timestamps []time.Time
	if len(s.Timestamps) == len(s.Values) {
		timestamps = append(timestamps, s.Timestamps[1:]...)
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + "_diff",
	}
}

// Tail returns a copy of the last n values. n larger than the series returns all values.
func (s *Series) Tail(n int) []float64 {
	if n > len(s.Values) {
		n = len(s.Values)
	}
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	copy(out, s.Values[len(s.Values)-n:])
	return out
}

// Continuation returns a series holding values that follow s, named <name>_forecast. When s has at least two
// timestamps, the new timestamps keep stepping by the last observed interval.
func (s *Series) Continuation(values []float64) *Series {
	next := &Series{
		Values: append([]float64(nil), values...),
		Name:   s.Name + "_forecast",
	}

	n := len(s.Timestamps)
	if n < 2 || n != len(s.Values) {
		return next
	}
	last := s.Timestamps[n-1]
	step := last.Sub(s.Timestamps[n-2])
	next.Timestamps = make([]time.Time, len(values))
	for i := range next.Timestamps {
		next.Timestamps[i] = last.Add(time.Duration(i+1) * step)
	}
	return next
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	var timestamps []time.Time
	if s.Timestamps != nil {
		timestamps = make([]time.Time, len(s.Timestamps))
		copy(timestamps, s.Timestamps)
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
