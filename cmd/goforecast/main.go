// Command goforecast forecasts a univariate series with the differenced autoregressive model.
//
// With no arguments it forecasts a built-in sample series five steps ahead with a window of 2.
// A YAML file (-config) or a CSV file (-csv) supplies other series; explicit flags override the file.
// Text output ends with the fitted model summary. -out writes the forecasts to a CSV file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/goforecast/config"
	"github.com/sartorproj/goforecast/forecast"
	"github.com/sartorproj/goforecast/internal/logs"
	"github.com/sartorproj/goforecast/timeseries"
)

// Output is the JSON document written with -json.
type Output struct {
	Name         string    `json:"name,omitempty"`
	Method       string    `json:"method"`
	P            int       `json:"p"`
	Input        []float64 `json:"input"`
	Forecast     []float64 `json:"forecast"`
	Coefficients []float64 `json:"coefficients"`
	Series       Stats     `json:"series"`
	Summary      Summary   `json:"summary"`
}

// Stats describes the input series.
type Stats struct {
	N    int     `json:"n"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summary is the JSON form of forecast.Summary. Values that are not finite are omitted.
type Summary struct {
	NObs            int       `json:"nobs"`
	RSquared        *float64  `json:"r_squared,omitempty"`
	Variance        float64   `json:"variance"`
	AIC             *float64  `json:"aic,omitempty"`
	AICc            *float64  `json:"aicc,omitempty"`
	BIC             *float64  `json:"bic,omitempty"`
	LjungBox        *LjungBox `json:"ljung_box,omitempty"`
	DurbinWatson    *float64  `json:"durbin_watson,omitempty"`
	SignificantLags []int     `json:"significant_lags,omitempty"`
}

// LjungBox is the residual autocorrelation test reported in Summary.
type LjungBox struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Lags      int     `json:"lags"`
	DOF       int     `json:"dof"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "goforecast:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("goforecast", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	csvPath := fs.String("csv", "", "CSV file holding the series")
	column := fs.String("column", "", "CSV value column (default \"y\")")
	p := fs.Int("p", 0, "window size / autoregressive order (default 2)")
	horizon := fs.Int("horizon", 0, "number of steps to forecast (default 5)")
	method := fs.String("method", "", "window or lagged")
	asJSON := fs.Bool("json", false, "write the result as JSON")
	logLevel := fs.String("log-level", "", "logrus level: debug, info, warn, error")
	out := fs.String("out", "", "CSV file to write the forecasts to")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyFlags(cfg, fs, *csvPath, *column, *p, *horizon, *method, *asJSON, *logLevel, *out)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logs.NewLoggerWithLevel("goforecast", cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetOutput(stderr)

	series, err := cfg.LoadSeries()
	if err != nil {
		return err
	}
	m, err := cfg.ForecastMethod()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"series": series.Name,
		"n":      series.Len(),
		"min":    series.Min(),
		"max":    series.Max(),
	}).Info("loaded series")

	f, err := forecast.NewFromSeries(series, cfg.Horizon, forecast.WithMethod(m), forecast.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := f.Fit(cfg.P)
	if err != nil {
		return err
	}
	summary := result.Summary()

	if cfg.Out != "" {
		if err := timeseries.SaveCSV(series.Continuation(result.Forecasts), cfg.Out, true); err != nil {
			return err
		}
		logger.WithField("path", cfg.Out).Info("wrote forecasts")
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(Output{
			Name:         series.Name,
			Method:       m.String(),
			P:            cfg.P,
			Input:        series.Values,
			Forecast:     result.Forecasts,
			Coefficients: result.Coefficients,
			Series:       seriesStats(series),
			Summary:      jsonSummary(summary),
		})
	}

	fmt.Fprintf(stdout, "Input:    %s\n", formatValues(series.Values))
	fmt.Fprintf(stdout, "Forecast: %s\n", formatValues(result.Forecasts))
	fmt.Fprintln(stdout)
	printSummary(stdout, series, result, summary)
	return nil
}

func seriesStats(s *timeseries.Series) Stats {
	return Stats{N: s.Len(), Mean: s.Mean(), Std: s.Std(), Min: s.Min(), Max: s.Max()}
}

func jsonSummary(s *forecast.Summary) Summary {
	out := Summary{
		NObs:            s.NObs,
		Variance:        s.Variance,
		SignificantLags: s.SignificantLags,
	}
	if s.Method == forecast.MethodWindow {
		out.RSquared = finite(s.RSquared)
	}
	if s.IC != nil {
		out.AIC = finite(s.IC.AIC)
		out.AICc = finite(s.IC.AICc)
		out.BIC = finite(s.IC.BIC)
	}
	if lb := s.LjungBox; lb != nil {
		out.LjungBox = &LjungBox{Statistic: lb.Statistic, PValue: lb.PValue, Lags: lb.Lags, DOF: lb.DOF}
	}
	if s.DurbinWatson != 0 {
		out.DurbinWatson = finite(s.DurbinWatson)
	}
	return out
}

// finite returns nil for NaN and infinities, which encoding/json rejects.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func printSummary(w io.Writer, series *timeseries.Series, result *forecast.Result, s *forecast.Summary) {
	st := seriesStats(series)
	fmt.Fprintf(w, "Series:   %s n=%d mean=%.4f std=%.4f min=%.4f max=%.4f\n", series.Name, st.N, st.Mean, st.Std, st.Min, st.Max)
	fmt.Fprintf(w, "Model:    %s p=%d coefficients=%s\n", s.Method, s.P, formatValues(s.Coefficients))
	fmt.Fprintf(w, "Window:   %s\n", formatValues(result.Window))
	if s.Method == forecast.MethodWindow {
		fmt.Fprintf(w, "Fit:      nobs=%d r2=%.4f variance=%.6g\n", s.NObs, s.RSquared, s.Variance)
	} else {
		fmt.Fprintf(w, "Fit:      nobs=%d variance=%.6g\n", s.NObs, s.Variance)
	}
	fmt.Fprintf(w, "Criteria: AIC=%.4f AICc=%.4f BIC=%.4f\n", s.IC.AIC, s.IC.AICc, s.IC.BIC)
	if lb := s.LjungBox; lb != nil {
		fmt.Fprintf(w, "Ljung-Box: Q=%.4f p=%.4f lags=%d dof=%d\n", lb.Statistic, lb.PValue, lb.Lags, lb.DOF)
	} else {
		fmt.Fprintln(w, "Ljung-Box: too few residuals")
	}
	if s.DurbinWatson != 0 {
		fmt.Fprintf(w, "Durbin-Watson: %.4f\n", s.DurbinWatson)
	}
	if s.ResidualACF != nil {
		fmt.Fprintf(w, "Residual ACF significant lags: %v (bound %.4f)\n", s.SignificantLags, s.ResidualACF.ConfBounds)
	}
}

// applyFlags overrides configuration fields with the flags that were set explicitly.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, csvPath, column string, p, horizon int, method string, asJSON bool, logLevel, out string) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "csv":
			cfg.Series.CSV = csvPath
			cfg.Series.Values = nil
			cfg.Series.Name = ""
		case "column":
			cfg.Series.Column = column
		case "p":
			cfg.P = p
		case "horizon":
			cfg.Horizon = horizon
		case "method":
			cfg.Method = method
		case "json":
			if asJSON {
				cfg.Output = "json"
			} else {
				cfg.Output = "text"
			}
		case "log-level":
			cfg.LogLevel = logLevel
		case "out":
			cfg.Out = out
		}
	})
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
