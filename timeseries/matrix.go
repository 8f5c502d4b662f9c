package timeseries

import (
	"fmt"
	"time"
)

// Matrix is a time-indexed table: row i is observed at Timestamps[i] and
// column j carries the series labelled Columns[j]. Missing observations are
// stored as the Missing() marker.
//
// A Matrix is treated as immutable once built. Operators return new matrices.
type Matrix struct {
	Timestamps []time.Time
	Columns    []string
	Data       [][]float64
}

// NewMatrix builds a Matrix after checking that data has one row per
// timestamp and one cell per column in every row.
func NewMatrix(timestamps []time.Time, columns []string, data [][]float64) (*Matrix, error) {
	if len(data) != len(timestamps) {
		return nil, shapeError("%d timestamps, %d data rows", len(timestamps), len(data))
	}
	for i, row := range data {
		if len(row) != len(columns) {
			return nil, shapeError("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}

	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		seen[c] = struct{}{}
	}

	return &Matrix{
		Timestamps: timestamps,
		Columns:    columns,
		Data:       data,
	}, nil
}

// Rows returns the number of time rows.
func (m *Matrix) Rows() int {
	return len(m.Data)
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return len(m.Columns)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, len(m.Data[i]))
	copy(row, m.Data[i])
	return row
}

// Column returns column j as a Series sharing no memory with the matrix.
func (m *Matrix) Column(j int) *Series {
	values := make([]float64, len(m.Data))
	for i, row := range m.Data {
		values[i] = row[j]
	}
	return &Series{
		Timestamps: m.copyTimestamps(),
		Values:     values,
		Name:       m.Columns[j],
	}
}

// ColumnByName returns the column labelled name.
func (m *Matrix) ColumnByName(name string) (*Series, error) {
	for j, c := range m.Columns {
		if c == name {
			return m.Column(j), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// SameShape reports whether other has the same row count, column count and
// timestamps as m.
func (m *Matrix) SameShape(other *Matrix) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i, ts := range m.Timestamps {
		if !ts.Equal(other.Timestamps[i]) {
			return false
		}
	}
	return true
}

// CheckSameShape returns ErrShapeMismatch when other differs in shape from m.
func (m *Matrix) CheckSameShape(other *Matrix) error {
	if !m.SameShape(other) {
		return shapeError("%dx%d vs %dx%d", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	return nil
}

// Derive builds a matrix on the same time axis as m with new columns and data.
// The caller guarantees that data has m.Rows() rows of len(columns) cells.
func (m *Matrix) Derive(columns []string, data [][]float64) *Matrix {
	return &Matrix{
		Timestamps: m.copyTimestamps(),
		Columns:    columns,
		Data:       data,
	}
}

// Copy creates a deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	data := make([][]float64, len(m.Data))
	for i := range m.Data {
		data[i] = m.Row(i)
	}
	columns := make([]string, len(m.Columns))
	copy(columns, m.Columns)
	return m.Derive(columns, data)
}

func (m *Matrix) copyTimestamps() []time.Time {
	timestamps := make([]time.Time, len(m.Timestamps))
	copy(timestamps, m.Timestamps)
	return timestamps
}
