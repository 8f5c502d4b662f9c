package rowwise

import "errors"

var (
	// ErrEmptyRow is returned under EmptyRowError when a mean is requested
	// over a row or column that has no valid observations.
	ErrEmptyRow = errors.New("no valid observations")

	// ErrInvalidQuantiles is returned when the number of quantile buckets is below one.
	ErrInvalidQuantiles = errors.New("number of quantiles must be at least 1")

	// ErrUnknownOperator is returned by Run for a name that is not registered.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrUnknownPolicy is returned when parsing an unrecognised policy or strategy name.
	ErrUnknownPolicy = errors.New("unknown policy")
)
