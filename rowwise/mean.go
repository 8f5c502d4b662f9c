package rowwise

import (
	"fmt"

	"github.com/sartorproj/gorowstats/stats"
	"github.com/sartorproj/gorowstats/timeseries"
)

// MeanColumn is the label of the single column produced by RowMean.
const MeanColumn = "Mean"

// RowMean returns a one-column matrix holding the mean of each row's valid set.
func (e *Engine) RowMean(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	data := make([][]float64, m.Rows())
	err := e.forEach(m.Rows(), func(i int) error {
		mean, n := stats.Mean(m.Data[i])
		if n == 0 {
			if e.emptyRow == EmptyRowError {
				return fmt.Errorf("row mean: row %d (%s): %w", i, m.Timestamps[i].Format("2006-01-02T15:04:05"), ErrEmptyRow)
			}
			e.rowLogger(m, i, "row_mean").Debug("row has no valid observations")
		}
		data[i] = []float64{mean}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.Derive([]string{MeanColumn}, data), nil
}

// ColumnMean returns the mean of each column over all rows where it is
// observed, keyed by column label in column order.
func (e *Engine) ColumnMean(m *timeseries.Matrix) (*timeseries.Keyed, error) {
	values := make([]float64, m.Cols())
	err := e.forEach(m.Cols(), func(j int) error {
		col := m.Column(j)
		mean, n := stats.Mean(col.Values)
		if n == 0 {
			if e.emptyRow == EmptyRowError {
				return fmt.Errorf("column mean: column %q: %w", col.Name, ErrEmptyRow)
			}
			e.log.WithField("column", col.Name).Debug("column has no valid observations")
		}
		values[j] = mean
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, len(m.Columns))
	copy(keys, m.Columns)
	return &timeseries.Keyed{Keys: keys, Values: values}, nil
}

// RowMean computes row means with the default engine.
func RowMean(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.RowMean(m)
}

// ColumnMean computes column means with the default engine.
func ColumnMean(m *timeseries.Matrix) (*timeseries.Keyed, error) {
	return std.ColumnMean(m)
}
