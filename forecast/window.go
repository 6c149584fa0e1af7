package forecast

import (
	"fmt"

	"github.com/sartorproj/goforecast"
	"github.com/sartorproj/goforecast/regression"
)

// fitWindowModel regresses each of the last p differences on the difference immediately before it.
// Predictors are diffs[n-p-1:n-1] and targets diffs[n-p:n], so both hold p values.
func fitWindowModel(diffs []float64, p int) (*regression.Model, error) {
	n := len(diffs)
	if p < 1 || p+1 > n {
		return nil, fmt.Errorf("forecast: window of %d needs %d differences, have %d: %w", p, p+1, n, goforecast.ErrInvalidInput)
	}
	return regression.Fit(diffs[n-p-1:n-1], diffs[n-p:n])
}

// iterate rolls model forward horizon steps and returns the differenced forecasts.
//
// The window x starts as diffs[n-p:n] in chronological order, so x[0] is the oldest difference.
// Each step predicts from x[0] alone, shifts the window towards higher indices, and replaces x[0]
// with the step level minus the level at offset len(levels)-p+i+1. Step levels are the prediction
// plus the last observed level. Offsets past the observed history read earlier step levels.
func iterate(model *regression.Model, diffs, levels []float64, p, horizon int) ([]float64, error) {
	n := len(diffs)
	if p < 1 || p > n {
		return nil, fmt.Errorf("forecast: window of %d exceeds %d differences: %w", p, n, goforecast.ErrInvalidInput)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("forecast: no observed levels: %w", goforecast.ErrInvalidInput)
	}

	x := make([]float64, p)
	copy(x, diffs[n-p:])

	last := levels[len(levels)-1]
	out := make([]float64, horizon)
	stepLevels := make([]float64, 0, horizon)

	for i := 0; i < horizon; i++ {
		y, err := model.Predict([]float64{1, x[0]})
		if err != nil {
			return nil, err
		}
		out[i] = y
		stepLevels = append(stepLevels, y+last)

		for j := p - 1; j >= 1; j-- {
			x[j] = x[j-1]
		}

		ref, err := levelAt(levels, stepLevels, len(levels)-p+i+1)
		if err != nil {
			return nil, err
		}
		x[0] = stepLevels[i] - ref
	}

	return out, nil
}

// levelAt reads index k of the observed levels followed by the step levels produced so far.
func levelAt(levels, stepLevels []float64, k int) (float64, error) {
	switch {
	case k < 0 || k >= len(levels)+len(stepLevels):
		return 0, fmt.Errorf("forecast: level offset %d outside history of %d: %w", k, len(levels)+len(stepLevels), goforecast.ErrIndexOutOfRange)
	case k < len(levels):
		return levels[k], nil
	default:
		return stepLevels[k-len(levels)], nil
	}
}
