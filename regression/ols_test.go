package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goforecast"
)

func TestDesignMatrix(t *testing.T) {
	d := DesignMatrix([]float64{2.2, 1.2, -0.5})

	rows, cols := d.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, []float64{1, 1, 1}, mat.Col(nil, 0, d))
	assert.Equal(t, []float64{2.2, 1.2, -0.5}, mat.Col(nil, 1, d))
}

func TestFitExactLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{3, 5, 7, 9, 11}

	m, err := Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, m.Intercept, 1e-12)
	assert.InDelta(t, 2.0, m.Slope, 1e-12)
	assert.InDelta(t, 1.0, m.RSquared, 1e-12)
	assert.InDelta(t, 0.0, m.Variance, 1e-20)
	assert.Equal(t, 5, m.NObs)
	assert.InDeltaSlice(t, make([]float64, 5), m.Residuals(), 1e-12)
}

func TestFitTwoPoints(t *testing.T) {
	// Two pairs determine the line exactly.
	m, err := Fit([]float64{2.2, 1.2}, []float64{1.2, 1.4})
	require.NoError(t, err)
	assert.InDelta(t, 1.64, m.Intercept, 1e-12)
	assert.InDelta(t, -0.2, m.Slope, 1e-12)
}

func TestFitLeastSquares(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 3, 2, 4}

	m, err := Fit(x, y)
	require.NoError(t, err)
	// Closed form: b1 = Sxy/Sxx = 4/5, b0 = mean(y) - b1*mean(x) = 2.5 - 0.8*2.5
	assert.InDelta(t, 0.8, m.Slope, 1e-12)
	assert.InDelta(t, 0.5, m.Intercept, 1e-12)

	residuals := m.Residuals()
	require.Len(t, residuals, 4)
	sum := 0.0
	for _, r := range residuals {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-12, "OLS residuals with an intercept sum to zero")
	assert.Greater(t, m.RSquared, 0.0)
	assert.Less(t, m.RSquared, 1.0)
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		err  error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, goforecast.ErrInvalidInput},
		{"single observation", []float64{1}, []float64{1}, goforecast.ErrInvalidInput},
		{"empty", nil, nil, goforecast.ErrInvalidInput},
		{"constant predictor", []float64{0, 0, 0}, []float64{1, 2, 3}, goforecast.ErrSingularMatrix},
		{"constant nonzero predictor", []float64{1.5, 1.5}, []float64{1, 2}, goforecast.ErrSingularMatrix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Fit(tt.x, tt.y)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFitMatrix(t *testing.T) {
	// y = 1 + 2*a - 3*b
	design := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		1, 1, 0,
		1, 0, 1,
		1, 2, 3,
	})
	y := []float64{1, 3, -2, -4}

	beta, err := FitMatrix(design, y)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, -3}, beta, 1e-10)
	assert.Equal(t, []float64{1, 3, -2, -4}, y, "targets must not be modified")
}

func TestFitMatrixErrors(t *testing.T) {
	_, err := FitMatrix(mat.NewDense(2, 3, nil), []float64{1, 2})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)

	_, err = FitMatrix(mat.NewDense(3, 2, nil), []float64{1, 2})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)

	// A zero predictor column is rank deficient.
	singular := mat.NewDense(3, 2, []float64{1, 0, 1, 0, 1, 0})
	_, err = FitMatrix(singular, []float64{1, 2, 3})
	assert.ErrorIs(t, err, goforecast.ErrSingularMatrix)
}

func TestPredict(t *testing.T) {
	m := &Model{Intercept: 1.64, Slope: -0.2}

	y, err := m.Predict([]float64{1, 1.2})
	require.NoError(t, err)
	assert.InDelta(t, 1.4, y, 1e-12)
	assert.InDelta(t, 1.4, m.PredictValue(1.2), 1e-12)
	assert.Equal(t, []float64{1.64, -0.2}, m.Coefficients())

	_, err = m.Predict([]float64{1.2})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)
	_, err = m.Predict([]float64{1, 1.2, 1.4})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)
}

func TestIsConstant(t *testing.T) {
	assert.True(t, IsConstant([]float64{0, 0, 0}))
	assert.True(t, IsConstant([]float64{2.5, 2.5 + 1e-15, 2.5}), "rounding noise is not spread")
	assert.True(t, IsConstant([]float64{7}))
	assert.False(t, IsConstant([]float64{1.2, 1.4}))
	assert.False(t, IsConstant([]float64{1e-6, 2e-6, 3e-6}))
	assert.False(t, IsConstant([]float64{2.2e-13, 1.2e-13, -0.5e-13}), "spread is judged against magnitude")
	assert.True(t, IsConstant([]float64{3e-14, 3e-14, 3e-14}))
}

func TestFitSmallScale(t *testing.T) {
	m, err := Fit([]float64{2.2e-13, 1.2e-13}, []float64{1.2e-13, 1.4e-13})
	require.NoError(t, err)
	assert.InDelta(t, -0.2, m.Slope, 1e-9)
	assert.InDelta(t, 1.64e-13, m.Intercept, 1e-22)
}
