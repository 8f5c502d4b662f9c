package rowwise

import (
	"sort"

	"github.com/sartorproj/gorowstats/timeseries"
)

// Count returns a one-column matrix, labelled by the formatted target,
// holding how many cells of each row equal target. Every cell is compared,
// missing ones included; because NaN never equals itself a missing target
// counts nothing.
func (e *Engine) Count(m *timeseries.Matrix, target float64) (*timeseries.Matrix, error) {
	data := make([][]float64, m.Rows())
	err := e.forEach(m.Rows(), func(i int) error {
		n := 0
		for _, v := range m.Data[i] {
			if v == target {
				n++
			}
		}
		data[i] = []float64{float64(n)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.Derive([]string{timeseries.FormatValue(target)}, data), nil
}

// CountAll returns one column per distinct non-missing value of m, in
// ascending order, each holding the per-row count of that value.
func (e *Engine) CountAll(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	values := Distinct(m)

	columns := make([]string, len(values))
	data := make([][]float64, m.Rows())
	for i := range data {
		data[i] = make([]float64, len(values))
	}

	for j, v := range values {
		counts, err := e.Count(m, v)
		if err != nil {
			return nil, err
		}
		columns[j] = counts.Columns[0]
		for i, row := range counts.Data {
			data[i][j] = row[0]
		}
	}
	return m.Derive(columns, data), nil
}

// Distinct returns the distinct non-missing values of m in ascending order.
// Negative and positive zero are one value.
func Distinct(m *timeseries.Matrix) []float64 {
	var all []float64
	for _, row := range m.Data {
		for _, v := range row {
			if !timeseries.IsMissing(v) {
				all = append(all, v)
			}
		}
	}
	sort.Float64s(all)

	out := all[:0]
	for i, v := range all {
		if i > 0 && v == out[len(out)-1] {
			continue
		}
		if v == 0 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// Count counts target per row with the default engine.
func Count(m *timeseries.Matrix, target float64) (*timeseries.Matrix, error) {
	return std.Count(m, target)
}

// CountAll counts every distinct value per row with the default engine.
func CountAll(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.CountAll(m)
}
