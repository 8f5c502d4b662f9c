// Package rowwise computes statistics across the columns of each row of a
// timeseries.Matrix.
//
// Every operator treats rows independently and works on a row's valid set:
// the cells that are not missing. Rank, percentile and quantile outputs have
// the input's shape and keep missing cells missing. Means and counts produce
// one column.
//
// # Rankings
//
// One routine ranks a row; the TieStrategy decides how equal values share
// ranks. For the row [5 5 3]:
//
//	Ordinal      [2 3 1]
//	Competition  [2 2 1]
//	Tied         [2.5 2.5 1]
//	Dense        [2 2 1]
//
// # Percentile ranks and quantiles
//
// PctRank divides each rank by the row's largest rank. A row with a single
// valid value has no percentile rank and stays missing.
//
// QuantilesBy computes that percentile rank first; cells it leaves missing
// are not bucketed. The rest are placed in buckets 1..n using breakpoints
// at the row's own quantiles 0, 1/n, ..., 1 of the original values.
//
//	buckets, err := rowwise.Quantiles(m, 5)
//
// # Empty rows
//
// A mean over an empty valid set is NaN by default. With EmptyRowError the
// call fails with ErrEmptyRow instead:
//
//	e := rowwise.New(&rowwise.Options{EmptyRow: rowwise.EmptyRowError})
//	_, err := e.RowMean(m) // errors.Is(err, rowwise.ErrEmptyRow)
//
// # Concurrency
//
// Options.Workers splits rows (columns for ColumnMean) across goroutines.
// Results do not depend on the worker count.
//
// # Named operators
//
// Run dispatches by name, which is how the rowstats command drives the
// engine:
//
//	res, err := e.Run("tied_quantiles", m, rowwise.Params{Quantiles: 10})
package rowwise
