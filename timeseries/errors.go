package timeseries

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when timestamps, column labels and data
	// do not line up, or when two matrices of different shape are combined.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDuplicateColumn is returned when a column label appears twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrUnknownColumn is returned when a lookup names a column that does not exist.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNoData is returned when a source yields no rows.
	ErrNoData = errors.New("no data")
)

func shapeError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrShapeMismatch, fmt.Sprintf(format, args...))
}
