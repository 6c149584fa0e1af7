package forecast

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goforecast"
	"github.com/sartorproj/goforecast/regression"
)

type laggedFit struct {
	coeffs    []float64 // [c, φ1, ..., φp]
	residuals []float64
}

// fitLaggedModel fits d[t] = c + Σ φj*d[t-j] for every t in [p, n) by least squares.
func fitLaggedModel(diffs []float64, p int) (*laggedFit, error) {
	n := len(diffs)
	rows := n - p
	if p < 1 || rows < p+1 {
		return nil, fmt.Errorf("forecast: lagged order %d needs %d differences, have %d: %w", p, 2*p+1, n, goforecast.ErrInvalidInput)
	}

	for j := 1; j <= p; j++ {
		if regression.IsConstant(diffs[p-j : n-j]) {
			return nil, fmt.Errorf("forecast: lag %d predictor is constant: %w", j, goforecast.ErrSingularMatrix)
		}
	}

	design := mat.NewDense(rows, p+1, nil)
	y := make([]float64, rows)
	for t := p; t < n; t++ {
		r := t - p
		design.Set(r, 0, 1)
		for j := 1; j <= p; j++ {
			design.Set(r, j, diffs[t-j])
		}
		y[r] = diffs[t]
	}

	coeffs, err := regression.FitMatrix(design, y)
	if err != nil {
		return nil, err
	}

	var fitted mat.VecDense
	fitted.MulVec(design, mat.NewVecDense(len(coeffs), coeffs))
	residuals := make([]float64, rows)
	for i := range residuals {
		residuals[i] = y[i] - fitted.AtVec(i)
	}

	return &laggedFit{coeffs: coeffs, residuals: residuals}, nil
}

// forecastLagged extends diffs by horizon recursive predictions, feeding each forecast back as a lag.
func forecastLagged(coeffs, diffs []float64, horizon int) []float64 {
	p := len(coeffs) - 1
	n := len(diffs)

	ext := make([]float64, n+horizon)
	copy(ext, diffs)

	for t := n; t < n+horizon; t++ {
		pred := coeffs[0]
		for j := 1; j <= p; j++ {
			pred += coeffs[j] * ext[t-j]
		}
		ext[t] = pred
	}

	return ext[n:]
}
