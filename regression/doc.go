// Package regression provides the least-squares estimator behind the forecaster.
//
// The autoregressive estimator is a two-parameter model: an intercept b0 and one lag
// coefficient b1, fitted over a design matrix with a bias column and a single predictor:
//
//	model, err := regression.Fit(x, y) // y ≈ b0 + b1*x
//	if errors.Is(err, goforecast.ErrSingularMatrix) {
//	    // x is constant
//	}
//	next, _ := model.Predict([]float64{1, x0})
//
// FitMatrix solves arbitrary tall least-squares systems with a QR factorization and is
// used by the lagged AR(p) forecaster.
package regression
