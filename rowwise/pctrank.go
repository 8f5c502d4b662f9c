package rowwise

import "github.com/sartorproj/gorowstats/timeseries"

// PctRank ranks each row with tie and divides every rank by the row's
// largest rank. A row with a single valid value has no meaningful
// percentile and yields a missing cell.
func (e *Engine) PctRank(m *timeseries.Matrix, tie TieStrategy) (*timeseries.Matrix, error) {
	op := tie.String() + "_pctrank"
	return e.mapRows(m, func(i int, row, out []float64) error {
		k, maxRank := rankRow(row, tie, out)
		switch k {
		case 0:
			return nil
		case 1:
			for j := range out {
				out[j] = timeseries.Missing()
			}
			e.rowLogger(m, i, op).Debug("single valid value, percentile rank left missing")
			return nil
		}
		for j, r := range out {
			if !timeseries.IsMissing(r) {
				out[j] = r / maxRank
			}
		}
		return nil
	})
}

// OrdinalPctRank divides ordinal ranks by the row's valid count.
func (e *Engine) OrdinalPctRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.PctRank(m, Ordinal)
}

// TiedPctRank divides fractional ranks by the row's largest fractional rank.
func (e *Engine) TiedPctRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.PctRank(m, Tied)
}

// OrdinalPctRank computes ordinal percentile ranks with the default engine.
func OrdinalPctRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.PctRank(m, Ordinal)
}

// TiedPctRank computes fractional percentile ranks with the default engine.
func TiedPctRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.PctRank(m, Tied)
}
