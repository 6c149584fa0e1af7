// Package regression implements ordinary least squares fitting for the autoregressive estimator.
package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goforecast"
)

const constantTolerance = 1e-12

// Model is a fitted simple linear regression y = Intercept + Slope*x.
type Model struct {
	Intercept float64 // b0
	Slope     float64 // b1
	RSquared  float64
	Variance  float64 // Residual variance
	NObs      int
	residuals []float64
}

// DesignMatrix builds the n x 2 design matrix for x: column 0 is all ones, column 1 holds x in order.
func DesignMatrix(x []float64) *mat.Dense {
	d := mat.NewDense(len(x), 2, nil)
	for i, v := range x {
		d.Set(i, 0, 1)
		d.Set(i, 1, v)
	}
	return d
}

// Fit estimates y ≈ b0 + b1*x by least squares.
//
// x and y must have the same length of at least 2. A predictor with zero variance makes the design
// matrix rank deficient and is reported as goforecast.ErrSingularMatrix.
func Fit(x, y []float64) (*Model, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression: %d predictors for %d targets: %w", len(x), len(y), goforecast.ErrInvalidInput)
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("regression: need at least 2 observations, got %d: %w", len(x), goforecast.ErrInvalidInput)
	}
	if IsConstant(x) {
		return nil, fmt.Errorf("regression: predictor has zero variance: %w", goforecast.ErrSingularMatrix)
	}

	beta, err := FitMatrix(DesignMatrix(x), y)
	if err != nil {
		return nil, err
	}

	m := &Model{
		Intercept: beta[0],
		Slope:     beta[1],
		NObs:      len(x),
		residuals: make([]float64, len(x)),
	}
	for i, v := range x {
		m.residuals[i] = y[i] - m.PredictValue(v)
	}
	m.RSquared = rSquared(y, m.residuals)
	m.Variance = residualVariance(m.residuals, 2)

	return m, nil
}

// FitMatrix solves the least-squares problem design * beta ≈ y with a QR factorization and returns beta.
// The design matrix must have at least as many rows as columns.
func FitMatrix(design *mat.Dense, y []float64) ([]float64, error) {
	rows, cols := design.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("regression: design has %d rows for %d targets: %w", rows, len(y), goforecast.ErrInvalidInput)
	}
	if rows < cols {
		return nil, fmt.Errorf("regression: %d observations cannot determine %d coefficients: %w", rows, cols, goforecast.ErrInvalidInput)
	}

	var qr mat.QR
	qr.Factorize(design)

	beta := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(beta, false, mat.NewVecDense(rows, append([]float64(nil), y...))); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("regression: ill-conditioned design (condition %.3g): %w", float64(cond), goforecast.ErrSingularMatrix)
		}
		return nil, fmt.Errorf("regression: %v: %w", err, goforecast.ErrSingularMatrix)
	}

	coeffs := beta.RawVector().Data
	if floats.HasNaN(coeffs) || math.IsInf(floats.Sum(coeffs), 0) {
		return nil, fmt.Errorf("regression: non-finite coefficients: %w", goforecast.ErrSingularMatrix)
	}
	return coeffs, nil
}

// IsConstant reports whether x has no spread beyond rounding noise relative to its largest magnitude.
// A constant predictor makes its design matrix column collinear with the bias column.
func IsConstant(x []float64) bool {
	if len(x) < 2 {
		return true
	}
	scale := math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
	if scale == 0 {
		return true
	}
	return stat.StdDev(x, nil) <= constantTolerance*scale
}

// Predict returns the dot product of [b0, b1] with a bias-augmented row [1, x].
func (m *Model) Predict(row []float64) (float64, error) {
	if len(row) != 2 {
		return 0, fmt.Errorf("regression: expected an augmented row of length 2, got %d: %w", len(row), goforecast.ErrInvalidInput)
	}
	coeffs := mat.NewVecDense(2, []float64{m.Intercept, m.Slope})
	return mat.Dot(coeffs, mat.NewVecDense(2, append([]float64(nil), row...))), nil
}

// PredictValue returns b0 + b1*x.
func (m *Model) PredictValue(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Coefficients returns [b0, b1].
func (m *Model) Coefficients() []float64 {
	return []float64{m.Intercept, m.Slope}
}

// Residuals returns a copy of the in-sample residuals.
func (m *Model) Residuals() []float64 {
	return append([]float64(nil), m.residuals...)
}

// rSquared returns 1 - SSE/SST. A constant target is perfectly explained when SSE is zero.
func rSquared(y, residuals []float64) float64 {
	mean := stat.Mean(y, nil)
	sst := 0.0
	for _, v := range y {
		sst += (v - mean) * (v - mean)
	}
	sse := floats.Dot(residuals, residuals)
	if sst == 0 {
		if sse == 0 {
			return 1
		}
		return 0
	}
	return 1 - sse/sst
}

// residualVariance divides SSE by the residual degrees of freedom, or by n when none remain.
func residualVariance(residuals []float64, nParams int) float64 {
	sse := floats.Dot(residuals, residuals)
	if dof := len(residuals) - nParams; dof > 0 {
		return sse / float64(dof)
	}
	return sse / float64(len(residuals))
}
