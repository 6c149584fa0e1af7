package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// InformationCriteria holds AIC, AICc, BIC and the log-likelihood they were derived from.
type InformationCriteria struct {
	AIC    float64
	AICc   float64 // Corrected for small samples
	BIC    float64
	LogLik float64
}

// GaussianLogLik returns the log-likelihood of residuals under i.i.d. normal errors with the maximum-likelihood
// variance SSE/n. A perfect fit has no finite likelihood and returns +Inf.
func GaussianLogLik(residuals []float64) float64 {
	n := float64(len(residuals))
	if n == 0 {
		return math.Inf(-1)
	}
	sigma2 := floats.Dot(residuals, residuals) / n
	if sigma2 == 0 {
		return math.Inf(1)
	}
	return -n / 2 * (math.Log(2*math.Pi*sigma2) + 1)
}

// CalculateIC calculates all information criteria.
// logLik is the log-likelihood, nObs is the number of observations,
// nParams is the number of estimated parameters.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	aicc := math.Inf(1)
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	}

	return &InformationCriteria{
		AIC:    aic,
		AICc:   aicc,
		BIC:    bic,
		LogLik: logLik,
	}
}
