// Package gorowstats provides rowwise statistics over time-indexed tables.
//
// Each row of a table holds the observations of several named series at one
// point in time. The operators treat every row independently and skip
// missing (NaN) observations.
//
// # Features
//
//   - Row and column means
//   - Ordinal, competition, fractional (tied) and dense rankings
//   - Percentile ranks derived from ordinal or tied ranks
//   - Quantile bucketing of each row
//   - Per-row counts of a value, or of every distinct value
//
// # Quick Start
//
// Rank a table and bucket it into quintiles:
//
//	m, _ := timeseries.LoadCSV("prices.csv", nil)
//	ranks, _ := rowwise.OrdinalRank(m)
//	buckets, _ := rowwise.Quantiles(m, 5)
//
// Use an Engine to change the empty-row policy or process rows concurrently:
//
//	e := rowwise.New(&rowwise.Options{EmptyRow: rowwise.EmptyRowError, Workers: 4})
//	means, err := e.RowMean(m)
//
// # Packages
//
//   - timeseries: Matrix, Series and CSV loading
//   - stats: slice statistics that skip missing values
//   - rowwise: the rowwise operators
//   - config: YAML configuration for the rowstats command
//
// The rowstats command (cmd/rowstats) runs configured operators over a CSV file.
package gorowstats
