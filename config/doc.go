// Package config describes a forecast run in YAML.
//
// A minimal file forecasts inline values:
//
//	series:
//	  name: demand
//	  values: [10.1, 11.2, 12.0, 11.8, 13.2, 13.9]
//	p: 2
//	horizon: 5
//
// Observations can come from a CSV file instead:
//
//	series:
//	  csv: data/demand.csv
//	  column: y
//	  date_column: ds
//	p: 3
//	horizon: 12
//	method: lagged
//	log_level: debug
//	output: json
//	out: data/demand_forecast.csv
//
// Load the file and resolve the series:
//
//	cfg, err := config.Load("forecast.yaml")
//	series, err := cfg.LoadSeries()
package config
