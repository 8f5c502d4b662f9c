package rowwise

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/gorowstats/timeseries"
)

// Params carries the arguments some operators take.
type Params struct {
	Quantiles int     // Bucket count for quantile operators (default: DefaultQuantiles)
	Target    float64 // Value counted by "count"
}

// Result is the output of a named operator. Exactly one of Matrix and Keyed is set.
type Result struct {
	Operator string
	Matrix   *timeseries.Matrix
	Keyed    *timeseries.Keyed
}

type operatorFunc func(e *Engine, m *timeseries.Matrix, p Params) (*Result, error)

func matrixOp(fn func(e *Engine, m *timeseries.Matrix, p Params) (*timeseries.Matrix, error)) operatorFunc {
	return func(e *Engine, m *timeseries.Matrix, p Params) (*Result, error) {
		out, err := fn(e, m, p)
		if err != nil {
			return nil, err
		}
		return &Result{Matrix: out}, nil
	}
}

var operators = map[string]operatorFunc{
	"row_mean": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.RowMean(m)
	}),
	"column_mean": func(e *Engine, m *timeseries.Matrix, _ Params) (*Result, error) {
		out, err := e.ColumnMean(m)
		if err != nil {
			return nil, err
		}
		return &Result{Keyed: out}, nil
	},
	"ordinal_rank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.Rank(m, Ordinal)
	}),
	"compete_rank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.Rank(m, Competition)
	}),
	"tied_rank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.Rank(m, Tied)
	}),
	"dense_rank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.Rank(m, Dense)
	}),
	"ordinal_pctrank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.PctRank(m, Ordinal)
	}),
	"tied_pctrank": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.PctRank(m, Tied)
	}),
	"quantiles": matrixOp(func(e *Engine, m *timeseries.Matrix, p Params) (*timeseries.Matrix, error) {
		return e.QuantilesBy(m, p.quantiles(), Ordinal)
	}),
	"tied_quantiles": matrixOp(func(e *Engine, m *timeseries.Matrix, p Params) (*timeseries.Matrix, error) {
		return e.QuantilesBy(m, p.quantiles(), Tied)
	}),
	"count": matrixOp(func(e *Engine, m *timeseries.Matrix, p Params) (*timeseries.Matrix, error) {
		return e.Count(m, p.Target)
	}),
	"count_all": matrixOp(func(e *Engine, m *timeseries.Matrix, _ Params) (*timeseries.Matrix, error) {
		return e.CountAll(m)
	}),
}

func (p Params) quantiles() int {
	if p.Quantiles == 0 {
		return DefaultQuantiles
	}
	return p.Quantiles
}

// Operators returns the registered operator names in sorted order.
func Operators() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsOperator reports whether name is a registered operator.
func IsOperator(name string) bool {
	_, ok := operators[name]
	return ok
}

// Run applies the operator registered under name.
func (e *Engine) Run(name string, m *timeseries.Matrix, p Params) (*Result, error) {
	fn, ok := operators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}

	start := time.Now()
	res, err := fn(e, m, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res.Operator = name

	e.log.WithFields(logrus.Fields{
		"op":      name,
		"rows":    m.Rows(),
		"cols":    m.Cols(),
		"elapsed": time.Since(start),
	}).Debug("operator finished")
	return res, nil
}
