package goforecast

import "errors"

// ErrInvalidInput is returned when a series, window size, horizon or vector pair cannot be used for fitting or
// forecasting.
var ErrInvalidInput = errors.New("invalid input")

// ErrSingularMatrix is returned when the least-squares design matrix is rank deficient, for example when the
// predictor column has zero variance.
var ErrSingularMatrix = errors.New("singular design matrix")

// ErrIndexOutOfRange is returned when the forecast window would read a level outside the available history.
var ErrIndexOutOfRange = errors.New("index out of range")
