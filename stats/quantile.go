package stats

import (
	"math"
	"sort"

	"github.com/sartorproj/gorowstats/timeseries"
)

// Quantile returns the q-quantile (0 <= q <= 1) of an ascending slice using
// linear interpolation between the two closest order statistics.
// It returns the missing marker for an empty slice. Infinite order
// statistics are allowed; the result never decreases as q grows.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return timeseries.Missing()
	}

	h := q * float64(n-1)
	lo := math.Floor(h)
	i := int(lo)
	switch {
	case i < 0:
		return sorted[0]
	case i >= n-1:
		return sorted[n-1]
	}
	return interpolate(sorted[i], sorted[i+1], h-lo)
}

// interpolate returns the point at frac in [0, 1) between a <= b.
func interpolate(a, b, frac float64) float64 {
	switch {
	case frac == 0 || a == b:
		return a
	case math.IsInf(a, -1) && math.IsInf(b, 1):
		// No finite point lies between the two; take the nearer end.
		if frac < 0.5 {
			return a
		}
		return b
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return (1-frac)*a + frac*b
	}
	return a + frac*(b-a)
}

// Quantiles returns the requested quantiles of the non-missing entries of
// values. Sorting happens once, so ask for every needed quantile in one call.
func Quantiles(values []float64, qs []float64) []float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !timeseries.IsMissing(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)

	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = Quantile(sorted, q)
	}
	return out
}

// Fractions returns the n+1 equally spaced fractions 0, 1/n, ..., 1.
func Fractions(n int) []float64 {
	if n < 1 {
		return nil
	}
	fr := make([]float64, n+1)
	for i := range fr {
		fr[i] = float64(i) / float64(n)
	}
	fr[n] = 1
	return fr
}

// Bucket returns the 1-based index of the first upper breakpoint that is
// greater than or equal to v. breaks holds n+1 ascending breakpoints, the
// first being the minimum. A value above every breakpoint returns 0.
func Bucket(breaks []float64, v float64) int {
	upper := breaks[1:]
	j := sort.Search(len(upper), func(k int) bool { return upper[k] >= v })
	if j == len(upper) {
		return 0
	}
	return j + 1
}
