package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goforecast"
	"github.com/sartorproj/goforecast/config"
	"github.com/sartorproj/goforecast/timeseries"
)

func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(nil, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "Input:    [11.3100, 11.2100, 13.0100")
	assert.Contains(t, stdout.String(), "Forecast: [27.1900, 28.5439, 30.1688, 31.7353, 33.3644]")
	assert.Contains(t, stdout.String(), "Series:   sample n=14 ")
	assert.Contains(t, stdout.String(), "min=11.2100 max=25.8000")
	assert.Contains(t, stdout.String(), "Model:    window p=2 coefficients=[1.6180, -0.1900]")
	assert.Contains(t, stdout.String(), "Window:   [1.2000, 1.3900]")
	assert.Contains(t, stdout.String(), "Ljung-Box: too few residuals")
	assert.Empty(t, stderr.String())
}

func TestRunSummaryDiagnostics(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-p", "12", "-horizon", "1"}, &stdout, &bytes.Buffer{}))

	assert.Contains(t, stdout.String(), "Fit:      nobs=12 ")
	assert.Contains(t, stdout.String(), "Ljung-Box: Q=")
	assert.Contains(t, stdout.String(), "lags=10 dof=9")
	assert.Contains(t, stdout.String(), "Durbin-Watson: ")
	assert.Contains(t, stdout.String(), "Residual ACF significant lags: ")

	stdout.Reset()
	require.NoError(t, run([]string{"-p", "12", "-horizon", "1", "-json"}, &stdout, &bytes.Buffer{}))
	var out Output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, 12, out.Summary.NObs)
	require.NotNil(t, out.Summary.LjungBox)
	assert.Equal(t, 9, out.Summary.LjungBox.DOF)
	assert.NotNil(t, out.Summary.AIC)
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-json", "-horizon", "3", "-log-level", "debug"}, &stdout, &stderr))

	var out Output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "window", out.Method)
	assert.Equal(t, 2, out.P)
	assert.Equal(t, config.SampleSeries, out.Input)
	assert.InDeltaSlice(t, []float64{27.19, 28.5439, 30.168759}, out.Forecast, 1e-9)
	assert.Len(t, out.Coefficients, 2)
	assert.Equal(t, 14, out.Series.N)
	assert.InDelta(t, 11.21, out.Series.Min, 0)
	assert.Equal(t, 2, out.Summary.NObs)
	require.NotNil(t, out.Summary.RSquared)
	assert.InDelta(t, 1.0, *out.Summary.RSquared, 1e-9)

	assert.Contains(t, stderr.String(), "[goforecast] loaded series")
	assert.Contains(t, stderr.String(), "forecast complete")
}

func TestRunCSVAndConfig(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "levels.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("y\n10.1\n11.2\n12.0\n11.8\n13.2\n13.9\n13.6\n15.2\n17.5\n19.4\n21.0\n23.2\n24.4\n25.8\n"), 0o644))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-csv", csvPath}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "Forecast: [27.2000, 28.5600, 30.2080, 31.7904, 33.4435]")

	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("series:\n  csv: "+csvPath+"\np: 2\nhorizon: 2\noutput: json\n"), 0o644))

	stdout.Reset()
	require.NoError(t, run([]string{"-config", cfgPath}, &stdout, &bytes.Buffer{}))
	var out Output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "levels", out.Name)
	assert.InDeltaSlice(t, []float64{27.2, 28.56}, out.Forecast, 1e-9)

	// Flags override the file.
	stdout.Reset()
	require.NoError(t, run([]string{"-config", cfgPath, "-json=false", "-horizon", "1"}, &stdout, &bytes.Buffer{}))
	assert.True(t, strings.HasPrefix(stdout.String(), "Input:    [10.1000, 11.2000, 12.0000, 11.8000, 13.2000, 13.9000, 13.6000, 15.2000, 17.5000, 19.4000, 21.0000, 23.2000, 24.4000, 25.8000]\nForecast: [27.2000]\n\n"), stdout.String())
	assert.Contains(t, stdout.String(), "Series:   levels n=14 ")
}

func TestRunWritesForecastCSV(t *testing.T) {
	dir := t.TempDir()
	values := []float64{10.1, 11.2, 12.0, 11.8, 13.2, 13.9, 13.6, 15.2, 17.5, 19.4, 21.0, 23.2, 24.4, 25.8}
	var b strings.Builder
	b.WriteString("ds,y\n")
	for i, v := range values {
		fmt.Fprintf(&b, "2024-01-%02d,%v\n", i+1, v)
	}
	csvPath := filepath.Join(dir, "daily.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(b.String()), 0o644))

	outPath := filepath.Join(dir, "daily_forecast.csv")
	require.NoError(t, run([]string{"-csv", csvPath, "-horizon", "2", "-out", outPath}, &bytes.Buffer{}, &bytes.Buffer{}))

	written, err := timeseries.LoadCSV(outPath, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{27.2, 28.56}, written.Values, 1e-9)
	require.Len(t, written.Timestamps, 2)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), written.Timestamps[0])
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), written.Timestamps[1])

	err = run([]string{"-csv", csvPath, "-out", filepath.Join(dir, "missing", "out.csv")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	err := run([]string{"-p", "13"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)

	err = run([]string{"-method", "seasonal"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, goforecast.ErrInvalidInput)

	err = run([]string{"-log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-unknown"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)

	err = run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
