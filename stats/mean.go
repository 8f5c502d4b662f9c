package stats

import "github.com/sartorproj/gorowstats/timeseries"

// Mean returns the arithmetic mean of the non-missing entries of values and
// how many entries contributed. The mean is missing when n is zero.
func Mean(values []float64) (mean float64, n int) {
	sum := 0.0
	for _, v := range values {
		if timeseries.IsMissing(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return timeseries.Missing(), 0
	}
	return sum / float64(n), n
}
