package rowwise

import (
	"fmt"

	"github.com/sartorproj/gorowstats/stats"
	"github.com/sartorproj/gorowstats/timeseries"
)

// DefaultQuantiles is the bucket count used when none is configured.
const DefaultQuantiles = 5

// QuantilesBy assigns every cell to one of n equal-probability buckets
// (1..n) of its row.
//
// The percentile rank computed with tie decides which cells are bucketed:
// a cell whose percentile rank is missing stays missing, so rows with fewer
// than two valid values produce no buckets. Breakpoints are the row's
// quantiles at 0, 1/n, ..., 1 over its original valid values, and a value
// falls into the first bucket whose upper breakpoint is >= the value.
func (e *Engine) QuantilesBy(m *timeseries.Matrix, n int, tie TieStrategy) (*timeseries.Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("quantiles: %w (got %d)", ErrInvalidQuantiles, n)
	}

	pct, err := e.PctRank(m, tie)
	if err != nil {
		return nil, err
	}
	if err := m.CheckSameShape(pct); err != nil {
		return nil, fmt.Errorf("quantiles: %w", err)
	}

	fractions := stats.Fractions(n)
	return e.mapRows(m, func(i int, row, out []float64) error {
		mask := pct.Data[i]
		ranked := false
		for _, p := range mask {
			if !timeseries.IsMissing(p) {
				ranked = true
				break
			}
		}
		if !ranked {
			return nil
		}

		breaks := stats.Quantiles(row, fractions)
		for j, v := range row {
			if timeseries.IsMissing(mask[j]) {
				continue
			}
			out[j] = float64(stats.Bucket(breaks, v))
		}
		return nil
	})
}

// Quantiles buckets rows using ordinal percentile ranks upstream.
func (e *Engine) Quantiles(m *timeseries.Matrix, n int) (*timeseries.Matrix, error) {
	return e.QuantilesBy(m, n, Ordinal)
}

// TiedQuantiles buckets rows using fractional percentile ranks upstream.
func (e *Engine) TiedQuantiles(m *timeseries.Matrix, n int) (*timeseries.Matrix, error) {
	return e.QuantilesBy(m, n, Tied)
}

// Quantiles buckets rows with the default engine.
func Quantiles(m *timeseries.Matrix, n int) (*timeseries.Matrix, error) {
	return std.QuantilesBy(m, n, Ordinal)
}

// TiedQuantiles buckets rows with the default engine using fractional ranks.
func TiedQuantiles(m *timeseries.Matrix, n int) (*timeseries.Matrix, error) {
	return std.QuantilesBy(m, n, Tied)
}
