package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/goforecast"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "y")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"2006",
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("timeseries: %s: %w", filename, err)
	}
	if series.Name == "" {
		series.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
// Rows whose value cell is empty, NA, NaN, null or unparsable are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	// Without a header the first column is the date and the second the value.
	valueIdx, dateIdx := 1, 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, dateIdx = findColumns(header, opts)
		if valueIdx == -1 {
			return nil, fmt.Errorf("value column %q not found: %w", opts.ValueColumn, goforecast.ErrInvalidInput)
		}
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}

		valStr := cell(record[valueIdx])
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(cell(record[dateIdx]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no valid data found in CSV: %w", goforecast.ErrInvalidInput)
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
		}, nil
	}

	return New(values), nil
}

// findColumns resolves the value and date column indices from a header row.
// An unnamed value column falls back to the last column.
func findColumns(header []string, opts *CSVOptions) (valueIdx, dateIdx int) {
	valueIdx, dateIdx = -1, -1
	for i, h := range header {
		h = cell(h)
		switch {
		case opts.ValueColumn != "" && h == opts.ValueColumn:
			valueIdx = i
		case opts.ValueColumn == "" && valueIdx == -1 && (h == "y" || h == "value" || h == "Value"):
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case opts.DateColumn == "" && dateIdx == -1 && (h == "ds" || h == "date" || h == "Date" || h == "timestamp"):
			dateIdx = i
		}
	}
	if valueIdx == -1 && opts.ValueColumn == "" && len(header) > 0 {
		valueIdx = len(header) - 1
	}
	return valueIdx, dateIdx
}

func parseDate(s, preferred string) (time.Time, bool) {
	if preferred != "" {
		if ts, err := time.Parse(preferred, s); err == nil {
			return ts, true
		}
	}
	for _, layout := range dateFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func cell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// WriteCSV writes a series to w. With includeIndex a "ds" date column (or a 1-based "index" column when the series
// has no timestamps) precedes the "y" column.
func WriteCSV(w io.Writer, series *Series, includeIndex bool) error {
	bw := bufio.NewWriter(w)
	withDates := len(series.Timestamps) == len(series.Values)

	switch {
	case includeIndex && withDates:
		bw.WriteString("ds,y\n")
	case includeIndex:
		bw.WriteString("index,y\n")
	default:
		bw.WriteString("y\n")
	}

	for i, v := range series.Values {
		if includeIndex {
			if withDates {
				bw.WriteString(series.Timestamps[i].Format("2006-01-02"))
			} else {
				bw.WriteString(strconv.Itoa(i + 1))
			}
			bw.WriteByte(',')
		}
		bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// SaveCSV saves a time series to a CSV file.
func SaveCSV(series *Series, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, series, includeIndex); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
