package forecast

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goforecast/regression"
	"github.com/sartorproj/goforecast/stats"
)

// Result is one fitted forecast run.
type Result struct {
	Method       Method
	P            int
	Model        *regression.Model // Set for MethodWindow only
	Coefficients []float64         // [b0, b1] for MethodWindow, [c, φ1..φp] for MethodLaggedAR
	Window       []float64         // Last p observed differences the forecast starts from
	Differences  []float64         // Forecasts on the differenced scale
	Forecasts    []float64         // Forecasts on the level scale
	residuals    []float64
}

// Residuals returns a copy of the in-sample residuals of the fitted model.
func (r *Result) Residuals() []float64 {
	return append([]float64(nil), r.residuals...)
}

// Summary describes a fitted model.
type Summary struct {
	Method       Method
	P            int
	Coefficients []float64
	RSquared     float64 // Only for MethodWindow
	Variance     float64 // Residual variance
	NObs         int
	IC           *stats.InformationCriteria
	LjungBox     *stats.LjungBoxResult // nil with fewer than 10 residuals
	DurbinWatson float64               // 0 when undefined

	// ResidualACF is nil when the residuals are constant or fewer than 3.
	ResidualACF     *stats.ACFResult
	SignificantLags []int
}

// Summary returns a summary of the fitted model and its residual diagnostics.
func (r *Result) Summary() *Summary {
	k := len(r.Coefficients)
	n := len(r.residuals)

	sse := floats.Dot(r.residuals, r.residuals)
	variance := 0.0
	switch {
	case n > k:
		variance = sse / float64(n-k)
	case n > 0:
		variance = sse / float64(n)
	}

	s := &Summary{
		Method:       r.Method,
		P:            r.P,
		Coefficients: append([]float64(nil), r.Coefficients...),
		Variance:     variance,
		NObs:         n,
		IC:           stats.CalculateIC(stats.GaussianLogLik(r.residuals), n, k),
		LjungBox:     stats.LjungBox(r.residuals, 10, k-1),
	}
	if r.Model != nil {
		s.RSquared = r.Model.RSquared
	}
	if d, ok := stats.DurbinWatson(r.residuals); ok {
		s.DurbinWatson = d
	}
	if n >= 3 {
		s.ResidualACF = stats.ACFWithConfidence(r.residuals, min(10, n-1))
	}
	if s.ResidualACF != nil {
		s.SignificantLags = stats.SignificantLags(s.ResidualACF.Values, s.ResidualACF.ConfBounds)
	}
	return s
}
