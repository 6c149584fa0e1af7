// Package timeseries provides time series data structures, differencing and CSV input/output.
//
// # Creating a Series
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Differencing
//
// First differences remove a linear trend. InvDiff reverses them given one anchor level:
//
//	diffs, err := timeseries.Diff(series.Values)
//	levels := timeseries.InvDiff(diffs, series.Values[0]) // equals series.Values
//
// The method form keeps timestamps aligned with the later observation of each pair:
//
//	d := series.Diff()
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSV("data.csv", nil) // value column "y"
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Writing
//
//	err := timeseries.WriteCSV(os.Stdout, series, true)
package timeseries
