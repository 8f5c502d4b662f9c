// Package timeseries provides the time-indexed table used by the rowwise
// operators.
//
// # Matrix
//
// A Matrix has one row per timestamp and one column per named series.
// Missing observations are stored as NaN and tested with IsMissing:
//
//	m, err := timeseries.NewMatrix(timestamps, []string{"AAPL", "MSFT"}, [][]float64{
//	    {101.2, 250.1},
//	    {102.0, timeseries.Missing()},
//	})
//
// NewMatrix rejects ragged data and duplicate labels with ErrShapeMismatch
// and ErrDuplicateColumn.
//
// # Columns
//
// Column and ColumnByName return a Series sharing the matrix timestamps:
//
//	s, _ := m.ColumnByName("MSFT")
//	mean, n := stats.Mean(s.Values)
//
// # Loading from CSV
//
// Load a wide table (a date column followed by one column per series):
//
//	m, err := timeseries.LoadCSV("prices.csv", nil)
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn: "date",
//	    Columns:    []string{"AAPL", "MSFT"},
//	    DateFormat: "2006-01-02",
//	}
//	m, err := timeseries.LoadCSVFromReader(reader, opts)
//
// Empty cells, NA, NaN and null load as missing values.
package timeseries
