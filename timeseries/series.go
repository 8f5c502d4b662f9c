// Package timeseries provides the time-indexed data structures shared by the
// rowwise operators.
package timeseries

import "time"

// Series is a single labelled column of a Matrix.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// NewSeries creates a named series with explicit timestamps.
func NewSeries(name string, timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, shapeError("series %q: %d timestamps, %d values", name, len(timestamps), len(values))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}, nil
}

// Len returns the number of observations, missing ones included.
func (s *Series) Len() int {
	return len(s.Values)
}
