package rowwise

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sartorproj/gorowstats/timeseries"
)

// TieStrategy selects how equal values in a row are ranked.
type TieStrategy int

const (
	// Ordinal gives tied values distinct consecutive ranks in row order.
	Ordinal TieStrategy = iota
	// Competition gives tied values the lowest rank of their group ("1224").
	Competition
	// Tied gives tied values the mean of the ranks they span ("1 2.5 2.5 4").
	Tied
	// Dense gives tied values one rank and advances by one per distinct value ("1223").
	Dense
)

func (s TieStrategy) String() string {
	switch s {
	case Ordinal:
		return "ordinal"
	case Competition:
		return "competition"
	case Tied:
		return "tied"
	case Dense:
		return "dense"
	}
	return fmt.Sprintf("TieStrategy(%d)", int(s))
}

// ParseTieStrategy converts a strategy name to a TieStrategy.
func ParseTieStrategy(s string) (TieStrategy, error) {
	switch strings.ToLower(s) {
	case "ordinal":
		return Ordinal, nil
	case "competition", "compete":
		return Competition, nil
	case "tied", "fractional":
		return Tied, nil
	case "dense":
		return Dense, nil
	}
	return Ordinal, fmt.Errorf("%w: tie strategy %q", ErrUnknownPolicy, s)
}

// rankRow writes the ranks of row's valid values into out at the same
// positions and leaves every other cell of out untouched. It returns the
// number of valid values and the largest rank assigned.
func rankRow(row []float64, tie TieStrategy, out []float64) (k int, maxRank float64) {
	idx := timeseries.ValidIndices(row)
	k = len(idx)
	if k == 0 {
		return 0, timeseries.Missing()
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return row[idx[a]] < row[idx[b]]
	})

	dense := 0
	for start := 0; start < k; {
		end := start + 1
		for end < k && row[idx[end]] == row[idx[start]] {
			end++
		}
		dense++

		for p := start; p < end; p++ {
			var r float64
			switch tie {
			case Competition:
				r = float64(start + 1)
			case Tied:
				r = float64(start+1+end) / 2
			case Dense:
				r = float64(dense)
			default:
				r = float64(p + 1)
			}
			out[idx[p]] = r
			maxRank = r
		}
		start = end
	}
	return k, maxRank
}

// Rank ranks each row's valid values with the given tie strategy.
// Missing cells stay missing.
func (e *Engine) Rank(m *timeseries.Matrix, tie TieStrategy) (*timeseries.Matrix, error) {
	return e.mapRows(m, func(_ int, row, out []float64) error {
		rankRow(row, tie, out)
		return nil
	})
}

// OrdinalRank ranks rows with ordinal tie-breaking.
func (e *Engine) OrdinalRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.Rank(m, Ordinal)
}

// CompeteRank ranks rows with competition ranking.
func (e *Engine) CompeteRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.Rank(m, Competition)
}

// TiedRank ranks rows with fractional ranking.
func (e *Engine) TiedRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.Rank(m, Tied)
}

// DenseRank ranks rows with dense ranking.
func (e *Engine) DenseRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return e.Rank(m, Dense)
}

// Rank ranks rows with the default engine.
func Rank(m *timeseries.Matrix, tie TieStrategy) (*timeseries.Matrix, error) {
	return std.Rank(m, tie)
}

// OrdinalRank ranks rows with ordinal tie-breaking using the default engine.
func OrdinalRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.Rank(m, Ordinal)
}

// CompeteRank ranks rows with competition ranking using the default engine.
func CompeteRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.Rank(m, Competition)
}

// TiedRank ranks rows with fractional ranking using the default engine.
func TiedRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.Rank(m, Tied)
}

// DenseRank ranks rows with dense ranking using the default engine.
func DenseRank(m *timeseries.Matrix) (*timeseries.Matrix, error) {
	return std.Rank(m, Dense)
}
