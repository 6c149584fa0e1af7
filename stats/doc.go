// Package stats provides diagnostic functions for residuals of fitted forecasting models.
//
// # Autocorrelation
//
//	acf := stats.ACF(residuals, 10)
//	res := stats.ACFWithConfidence(residuals, 10)
//	lags := stats.SignificantLags(res.Values, res.ConfBounds)
//
// # Residual Tests
//
// Ljung-Box tests whether residuals are white noise. fitdf is the number of
// estimated parameters:
//
//	lb := stats.LjungBox(residuals, 10, 2)
//	if lb != nil && lb.PValue < 0.05 {
//	    // residuals are autocorrelated
//	}
//
//	d, ok := stats.DurbinWatson(residuals)
//
// # Information Criteria
//
//	ic := stats.CalculateIC(stats.GaussianLogLik(residuals), len(residuals), 2)
//	fmt.Printf("AIC=%.2f AICc=%.2f BIC=%.2f\n", ic.AIC, ic.AICc, ic.BIC)
package stats
