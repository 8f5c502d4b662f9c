package timeseries

import "math"

// IsMissing reports whether v marks an absent observation.
// Every operator in this module decides missingness through this predicate.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// Missing returns the value used to mark an absent observation.
func Missing() float64 {
	return math.NaN()
}

// ValidIndices returns the positions of the non-missing entries of values,
// in their original order.
func ValidIndices(values []float64) []int {
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if !IsMissing(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

// MissingRow returns a row of n missing values.
func MissingRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = Missing()
	}
	return row
}
