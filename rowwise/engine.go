package rowwise

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gorowstats/timeseries"
)

// EmptyRowPolicy decides what a mean over an empty valid set produces.
type EmptyRowPolicy int

const (
	// EmptyRowNaN yields the missing marker.
	EmptyRowNaN EmptyRowPolicy = iota
	// EmptyRowError fails the call with ErrEmptyRow.
	EmptyRowError
)

func (p EmptyRowPolicy) String() string {
	switch p {
	case EmptyRowNaN:
		return "nan"
	case EmptyRowError:
		return "error"
	}
	return fmt.Sprintf("EmptyRowPolicy(%d)", int(p))
}

// ParseEmptyRowPolicy converts "nan" or "error" to a policy.
func ParseEmptyRowPolicy(s string) (EmptyRowPolicy, error) {
	switch strings.ToLower(s) {
	case "", "nan":
		return EmptyRowNaN, nil
	case "error":
		return EmptyRowError, nil
	}
	return EmptyRowNaN, fmt.Errorf("%w: empty row %q", ErrUnknownPolicy, s)
}

// Options holds configuration for an Engine.
type Options struct {
	EmptyRow EmptyRowPolicy     // Empty valid set handling for means (default: EmptyRowNaN)
	Workers  int                // Rows processed concurrently (default: 1)
	Logger   logrus.FieldLogger // Debug output for degenerate rows (default: standard logger)
}

// DefaultOptions returns the default engine options.
func DefaultOptions() *Options {
	return &Options{
		EmptyRow: EmptyRowNaN,
		Workers:  1,
		Logger:   logrus.StandardLogger(),
	}
}

// Engine applies rowwise operators. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	emptyRow EmptyRowPolicy
	workers  int
	log      logrus.FieldLogger
}

// New creates an Engine. A nil opts uses DefaultOptions.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	e := &Engine{
		emptyRow: opts.EmptyRow,
		workers:  opts.Workers,
		log:      opts.Logger,
	}
	if e.workers < 1 {
		e.workers = 1
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	return e
}

var std = New(nil)

// forEach calls fn for every index in [0, n). With more than one worker the
// range is split into contiguous chunks run on an errgroup. fn must only
// write to state owned by its index.
func (e *Engine) forEach(n int, fn func(i int) error) error {
	if e.workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunk := (n + e.workers - 1) / e.workers
	var g errgroup.Group
	g.SetLimit(e.workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, start+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// mapRows builds a same-shape matrix by applying fn to every row of m.
// fn receives the input row and a missing-filled output row of equal length.
func (e *Engine) mapRows(m *timeseries.Matrix, fn func(i int, row, out []float64) error) (*timeseries.Matrix, error) {
	data := make([][]float64, m.Rows())
	err := e.forEach(m.Rows(), func(i int) error {
		out := timeseries.MissingRow(m.Cols())
		if err := fn(i, m.Data[i], out); err != nil {
			return err
		}
		data[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(m.Columns))
	copy(columns, m.Columns)
	return m.Derive(columns, data), nil
}

func (e *Engine) rowLogger(m *timeseries.Matrix, i int, op string) logrus.FieldLogger {
	return e.log.WithFields(logrus.Fields{
		"op":        op,
		"row":       i,
		"timestamp": m.Timestamps[i],
	})
}
