// Package goforecast provides differenced autoregressive forecasting for univariate time series.
//
// A series is first differenced, a two-parameter least-squares model (intercept and one lag
// coefficient) is fitted over a trailing window of differences, and the model is rolled forward
// one step at a time. The differenced forecasts are then integrated back to the level of the
// original series.
//
// # Quick Start
//
//	f, err := forecast.New(values, 5) // forecast 5 steps ahead
//	if err != nil {
//	    log.Fatal(err)
//	}
//	levels, err := f.Forecast(2) // window of 2 differences
//
// Inspect the fitted model:
//
//	result, _ := f.Fit(2)
//	fmt.Printf("b0=%.4f b1=%.4f\n", result.Model.Intercept, result.Model.Slope)
//
// # Packages
//
//   - forecast: the iterative forecaster, the lagged AR(p) alternative and batch runs
//   - regression: design matrices and OLS fitting
//   - timeseries: the Series type, differencing and CSV input/output
//   - stats: residual diagnostics (ACF, Ljung-Box)
//   - config: YAML run configuration
//
// # Errors
//
// All packages wrap the sentinel errors declared here, so callers can test with errors.Is:
//
//	if errors.Is(err, goforecast.ErrSingularMatrix) {
//	    // constant input, nothing to regress
//	}
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goforecast
