// Package config loads forecast run parameters from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/goforecast"
	"github.com/sartorproj/goforecast/forecast"
	"github.com/sartorproj/goforecast/timeseries"
)

// SampleSeries is the built-in demonstration series used when no input is configured.
var SampleSeries = []float64{11.31, 11.21, 13.01, 11.81, 13.2, 13.91, 12.6, 15.21, 14.5, 19.4, 21.01, 23.21, 24.41, 25.8}

// Series configures where observations come from. Values and CSV are mutually exclusive.
type Series struct {
	Name       string    `yaml:"name,omitempty"`
	Values     []float64 `yaml:"values,omitempty"`
	CSV        string    `yaml:"csv,omitempty"`
	Column     string    `yaml:"column,omitempty"`
	DateColumn string    `yaml:"date_column,omitempty"`
}

// Config is a single forecast run.
type Config struct {
	Series   Series `yaml:"series"`
	P        int    `yaml:"p"`
	Horizon  int    `yaml:"horizon"`
	Method   string `yaml:"method,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	Output   string `yaml:"output,omitempty"` // "text" or "json"
	Out      string `yaml:"out,omitempty"`    // CSV file receiving the forecasts
}

// Default returns the demonstration run: the sample series, p=2, horizon 5.
func Default() *Config {
	return &Config{
		Series:   Series{Name: "sample", Values: append([]float64(nil), SampleSeries...)},
		P:        2,
		Horizon:  5,
		Method:   forecast.MethodWindow.String(),
		LogLevel: "warn",
		Output:   "text",
	}
}

// Parse parses a YAML configuration. Fields missing from data keep their Default values, except that
// configuring a CSV source clears the sample values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Series.Values = nil
	cfg.Series.Name = ""

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if len(cfg.Series.Values) == 0 && cfg.Series.CSV == "" {
		cfg.Series.Name = "sample"
		cfg.Series.Values = append([]float64(nil), SampleSeries...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the configuration for structural correctness. Series-dependent bounds on P are checked
// by the forecaster.
func (c *Config) Validate() error {
	if len(c.Series.Values) > 0 && c.Series.CSV != "" {
		return fmt.Errorf("config: series values and csv are mutually exclusive: %w", goforecast.ErrInvalidInput)
	}
	if c.P < 1 {
		return fmt.Errorf("config: p must be positive, got %d: %w", c.P, goforecast.ErrInvalidInput)
	}
	if c.Horizon < 1 {
		return fmt.Errorf("config: horizon must be at least 1, got %d: %w", c.Horizon, goforecast.ErrInvalidInput)
	}
	if _, err := c.ForecastMethod(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Output {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unknown output %q: %w", c.Output, goforecast.ErrInvalidInput)
	}
	return nil
}

// ForecastMethod returns the parsed Method.
func (c *Config) ForecastMethod() (forecast.Method, error) {
	return forecast.ParseMethod(c.Method)
}

// LoadSeries returns the configured series, reading the CSV file when one is set.
func (c *Config) LoadSeries() (*timeseries.Series, error) {
	if c.Series.CSV == "" {
		s := timeseries.New(append([]float64(nil), c.Series.Values...))
		s.Name = c.Series.Name
		return s, nil
	}

	opts := timeseries.DefaultCSVOptions()
	if c.Series.Column != "" {
		opts.ValueColumn = c.Series.Column
	}
	opts.DateColumn = c.Series.DateColumn

	s, err := timeseries.LoadCSV(c.Series.CSV, opts)
	if err != nil {
		return nil, err
	}
	if c.Series.Name != "" {
		s.Name = c.Series.Name
	}
	return s, nil
}
