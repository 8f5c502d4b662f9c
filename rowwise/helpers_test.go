package rowwise

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sartorproj/gorowstats/timeseries"
)

var (
	nan = math.NaN()
	inf = math.Inf(1)
)

func newTestMatrix(data [][]float64) *timeseries.Matrix {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, len(data))
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * 24 * time.Hour)
	}

	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	columns := make([]string, cols)
	for j := range columns {
		columns[j] = fmt.Sprintf("s%d", j)
	}

	m, err := timeseries.NewMatrix(timestamps, columns, data)
	if err != nil {
		panic(err)
	}
	return m
}

// randomMatrix returns a rows x cols matrix of small integers, so ties are
// common, with roughly one cell in five missing.
func randomMatrix(seed int64, rows, cols int) *timeseries.Matrix {
	r := rand.New(rand.NewSource(seed))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			if r.Intn(5) == 0 {
				data[i][j] = nan
				continue
			}
			data[i][j] = float64(r.Intn(6))
		}
	}
	return newTestMatrix(data)
}

// sameCells reports whether a and b hold equal values, treating two missing
// cells as equal.
func sameCells(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		am, bm := timeseries.IsMissing(a[i]), timeseries.IsMissing(b[i])
		if am != bm {
			return false
		}
		if !am && math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func sameData(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameCells(a[i], b[i]) {
			return false
		}
	}
	return true
}
