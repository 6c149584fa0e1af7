package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox tests residuals for autocorrelation up to lag h.
// The null hypothesis is no autocorrelation; a p-value below 0.05 rejects it.
// fitdf is the number of estimated model parameters and is subtracted from the degrees of freedom.
// Returns nil with fewer than 10 residuals or when the residuals are constant.
func LjungBox(residuals []float64, lags, fitdf int) *LjungBoxResult {
	n := len(residuals)
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - distuv.ChiSquared{K: float64(dof)}.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// DurbinWatson returns the Durbin-Watson statistic for first-order autocorrelation in residuals.
// Values near 2 indicate none, below 2 positive and above 2 negative autocorrelation.
// ok is false with fewer than 2 residuals or when all residuals are zero.
func DurbinWatson(residuals []float64) (d float64, ok bool) {
	if len(residuals) < 2 {
		return 0, false
	}

	denominator := floats.Dot(residuals, residuals)
	if denominator == 0 {
		return 0, false
	}

	numerator := 0.0
	for i := 1; i < len(residuals); i++ {
		diff := residuals[i] - residuals[i-1]
		numerator += diff * diff
	}

	return numerator / denominator, true
}
