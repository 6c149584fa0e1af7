// Package forecast implements multi-step forecasting on first differences.
//
// A Forecaster differences its series once, fits an autoregressive model, rolls
// the model forward PredictionLength steps and integrates the differenced
// forecasts back to levels anchored at the last observation.
//
// # Basic Usage
//
//	f, err := forecast.New(values, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	levels, err := f.Forecast(2)
//
// # Window Method
//
// MethodWindow is the default. It regresses each of the last p differences on
// the difference immediately before it, giving an intercept and a single lag
// coefficient. The forecast then rolls a p-length window in which only the first
// element feeds the prediction:
//
//   - the window starts as the last p differences in chronological order, so
//     its first element is the oldest of them
//   - each step predicts from that first element, shifts the window, and stores
//     the step level minus an earlier level at a sliding offset in the first slot
//   - offsets past the end of the observed series read the levels of earlier steps
//
// Although p sizes the window, the model is first order. p must satisfy
// 2 <= p < len(values)-1.
//
// # Lagged AR(p)
//
// MethodLaggedAR is a separate, opt-in model: a true AR(p) on the differenced
// series fitted over every available row and forecast recursively:
//
//	f, _ := forecast.New(values, 5, forecast.WithMethod(forecast.MethodLaggedAR))
//
// # Inspecting a Fit
//
//	result, _ := f.Fit(2)
//	summary := result.Summary()
//	fmt.Println(summary.Coefficients, summary.Variance)
//	fmt.Println(summary.SignificantLags) // residual autocorrelation beyond ±1.96/sqrt(n)
//
// # Batches
//
// Independent series can be forecast concurrently:
//
//	results, err := forecast.Batch(ctx, jobs, 4)
//	for _, r := range results {
//	    if r.Err != nil { ... }
//	}
package forecast
