// Package config loads the YAML configuration of the rowstats command.
//
// A minimal config.yaml:
//
//	input:
//	  path: prices.csv
//	operators: [row_mean, ordinal_rank, quantiles]
//
// Load fills unset fields with defaults and validates operator names
// against the rowwise registry. Watch reloads the file on every save.
package config
