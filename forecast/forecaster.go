// Package forecast implements differenced autoregressive forecasting.
package forecast

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goforecast"
	"github.com/sartorproj/goforecast/internal/logs"
	"github.com/sartorproj/goforecast/timeseries"
)

// Method selects how the autoregressive model is fitted and rolled forward.
type Method int

const (
	// MethodWindow regresses each difference on its predecessor over a trailing window of p differences and
	// predicts from the first element of a rolling window. It is a first-order model whatever p is.
	MethodWindow Method = iota
	// MethodLaggedAR fits a true AR(p) on the differenced series: d[t] = c + φ1*d[t-1] + ... + φp*d[t-p].
	MethodLaggedAR
)

func (m Method) String() string {
	switch m {
	case MethodWindow:
		return "window"
	case MethodLaggedAR:
		return "lagged"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses "window" or "lagged". An empty string selects MethodWindow.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "window":
		return MethodWindow, nil
	case "lagged", "ar", "arp":
		return MethodLaggedAR, nil
	default:
		return 0, fmt.Errorf("forecast: unknown method %q: %w", s, goforecast.ErrInvalidInput)
	}
}

// Option configures a Forecaster.
type Option func(*Forecaster)

// WithMethod selects the fitting method. The default is MethodWindow.
func WithMethod(m Method) Option {
	return func(f *Forecaster) {
		f.method = m
	}
}

// WithLogger sets the logger used for fit and validation messages. By default nothing is logged.
func WithLogger(logger *logrus.Logger) Option {
	return func(f *Forecaster) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Forecaster forecasts a fixed number of steps past the end of one series.
//
// A Forecaster holds its own copy of the series and is safe for concurrent use.
type Forecaster struct {
	series  *timeseries.Series
	horizon int
	method  Method
	logger  *logrus.Logger
}

// New creates a Forecaster for values that predicts predictionLength steps ahead.
// values must hold at least 3 finite observations and predictionLength must be at least 1.
func New(values []float64, predictionLength int, opts ...Option) (*Forecaster, error) {
	return NewFromSeries(&timeseries.Series{Values: values}, predictionLength, opts...)
}

// NewFromSeries is New for a loaded series. The series is copied, so later changes to it do not affect
// the Forecaster.
func NewFromSeries(series *timeseries.Series, predictionLength int, opts ...Option) (*Forecaster, error) {
	if series == nil {
		return nil, fmt.Errorf("forecast: nil series: %w", goforecast.ErrInvalidInput)
	}

	f := &Forecaster{
		series:  series.Copy(),
		horizon: predictionLength,
		logger:  logs.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.series.Validate(3); err != nil {
		f.logger.WithError(err).WithField("series", series.Name).Warn("rejected series")
		return nil, err
	}
	if predictionLength < 1 {
		f.logger.WithField("predictionLength", predictionLength).Warn("rejected horizon")
		return nil, fmt.Errorf("forecast: prediction length must be at least 1, got %d: %w", predictionLength, goforecast.ErrInvalidInput)
	}
	if f.method != MethodWindow && f.method != MethodLaggedAR {
		return nil, fmt.Errorf("forecast: unknown method %v: %w", f.method, goforecast.ErrInvalidInput)
	}

	return f, nil
}

// PredictionLength returns the number of steps each forecast produces.
func (f *Forecaster) PredictionLength() int {
	return f.horizon
}

// Method returns the configured fitting method.
func (f *Forecaster) Method() Method {
	return f.method
}

// Forecast returns PredictionLength future levels using a window of p differences.
//
// With MethodWindow, p must satisfy 2 <= p < len(values)-1.
func (f *Forecaster) Forecast(p int) ([]float64, error) {
	result, err := f.Fit(p)
	if err != nil {
		return nil, err
	}
	return result.Forecasts, nil
}

// Fit runs a forecast with window size p and returns the fitted model alongside the forecasts.
func (f *Forecaster) Fit(p int) (*Result, error) {
	if err := f.validateOrder(p); err != nil {
		f.logger.WithError(err).WithField("p", p).Warn("rejected order")
		return nil, err
	}

	// Validate(3) guarantees at least two differences.
	diffs := f.series.Diff()

	var (
		result *Result
		err    error
	)
	switch f.method {
	case MethodLaggedAR:
		result, err = f.fitLagged(diffs.Values, p)
	default:
		result, err = f.fitWindow(diffs.Values, p)
	}
	if err != nil {
		f.logger.WithError(err).WithFields(logrus.Fields{"p": p, "method": f.method}).Warn("forecast failed")
		return nil, err
	}

	result.Window = diffs.Tail(p)
	// Integrate from the last observed level and drop the anchor itself.
	result.Forecasts = timeseries.InvDiff(result.Differences, f.series.Last())[1:]

	f.logger.WithFields(logrus.Fields{
		"p":       p,
		"method":  f.method,
		"coeffs":  result.Coefficients,
		"horizon": f.horizon,
	}).Debug("forecast complete")

	return result, nil
}

func (f *Forecaster) validateOrder(p int) error {
	n := f.series.Len()
	switch f.method {
	case MethodLaggedAR:
		// n-1 differences leave n-1-p regression rows for p+1 coefficients.
		if p < 1 || n-1-p < p+1 {
			return fmt.Errorf("forecast: lagged order p=%d needs 1 <= p <= %d for %d observations: %w", p, (n-2)/2, n, goforecast.ErrInvalidInput)
		}
	default:
		if p < 2 || p >= n-1 {
			return fmt.Errorf("forecast: p=%d out of range [2, %d) for %d observations: %w", p, n-1, n, goforecast.ErrInvalidInput)
		}
	}
	return nil
}

func (f *Forecaster) fitWindow(diffs []float64, p int) (*Result, error) {
	model, err := fitWindowModel(diffs, p)
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{"b0": model.Intercept, "b1": model.Slope, "p": p}).Debug("fitted window model")

	steps, err := iterate(model, diffs, f.series.Values, p, f.horizon)
	if err != nil {
		return nil, err
	}

	return &Result{
		Method:       MethodWindow,
		P:            p,
		Model:        model,
		Coefficients: model.Coefficients(),
		Differences:  steps,
		residuals:    model.Residuals(),
	}, nil
}

func (f *Forecaster) fitLagged(diffs []float64, p int) (*Result, error) {
	fit, err := fitLaggedModel(diffs, p)
	if err != nil {
		return nil, err
	}

	f.logger.WithFields(logrus.Fields{"coeffs": fit.coeffs, "p": p}).Debug("fitted lagged model")

	return &Result{
		Method:       MethodLaggedAR,
		P:            p,
		Coefficients: fit.coeffs,
		Differences:  forecastLagged(fit.coeffs, diffs, f.horizon),
		residuals:    fit.residuals,
	}, nil
}
