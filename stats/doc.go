// Package stats provides slice-level statistics that skip missing values.
//
// # Mean
//
//	mean, n := stats.Mean(values) // n counts the non-missing entries
//
// # Quantiles
//
// Quantiles use linear interpolation between the closest order statistics,
// so the 0 and 1 quantiles are the minimum and maximum:
//
//	qs := stats.Quantiles(values, []float64{0.25, 0.5, 0.75})
//
// Equally spaced breakpoints for n buckets and the bucket of a value:
//
//	breaks := stats.Quantiles(values, stats.Fractions(n))
//	b := stats.Bucket(breaks, v) // 1..n
package stats
