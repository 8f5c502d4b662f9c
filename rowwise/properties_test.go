package rowwise

import (
	"sort"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sartorproj/gorowstats/timeseries"
)

var _ = Describe("Rowwise operators", func() {
	m := randomMatrix(42, 60, 7)

	It("should give ordinal ranks that permute 1..k and keep missing cells", func() {
		out, err := OrdinalRank(m)
		Expect(err).Should(BeNil())

		for i, row := range out.Data {
			var ranks []float64
			for j, v := range row {
				Expect(timeseries.IsMissing(v)).Should(Equal(timeseries.IsMissing(m.Data[i][j])))
				if !timeseries.IsMissing(v) {
					ranks = append(ranks, v)
				}
			}
			sort.Float64s(ranks)
			for r, v := range ranks {
				Expect(v).Should(Equal(float64(r + 1)))
			}
		}
	})

	It("should agree across all tie strategies on rows without ties", func() {
		distinct := newTestMatrix([][]float64{
			{4, nan, 1, 9, 2.5},
			{-3, 8, nan, nan, 0},
		})

		ordinal, err := OrdinalRank(distinct)
		Expect(err).Should(BeNil())
		for _, tie := range []TieStrategy{Competition, Tied, Dense} {
			out, err := Rank(distinct, tie)
			Expect(err).Should(BeNil())
			Expect(sameData(out.Data, ordinal.Data)).Should(BeTrue(), tie.String())
		}
	})

	It("should rank [5 5 3] per tie strategy", func() {
		row := newTestMatrix([][]float64{{5, 5, 3}})
		want := map[TieStrategy][]float64{
			Ordinal:     {2, 3, 1},
			Competition: {2, 2, 1},
			Tied:        {2.5, 2.5, 1},
			Dense:       {2, 2, 1},
		}
		for tie, expected := range want {
			out, err := Rank(row, tie)
			Expect(err).Should(BeNil())
			Expect(out.Data[0]).Should(Equal(expected), tie.String())
		}
	})

	It("should bucket a row by its own quartiles", func() {
		out, err := Quantiles(newTestMatrix([][]float64{{10, 20, 30, 40}}), 4)
		Expect(err).Should(BeNil())
		Expect(out.Data[0]).Should(Equal([]float64{1, 2, 3, 4}))
	})

	It("should preserve the row count and timestamps", func() {
		e := New(nil)
		for _, name := range Operators() {
			res, err := e.Run(name, m, Params{Target: 1})
			Expect(err).Should(BeNil())
			if res.Keyed != nil {
				Expect(res.Keyed.Keys).Should(Equal(m.Columns))
				continue
			}
			Expect(res.Matrix.Rows()).Should(Equal(m.Rows()), name)
			Expect(res.Matrix.Timestamps).Should(Equal(m.Timestamps), name)
			for _, row := range res.Matrix.Data {
				Expect(row).Should(HaveLen(res.Matrix.Cols()), name)
			}
		}
	})

	It("should keep count and count_all consistent", func() {
		all, err := CountAll(m)
		Expect(err).Should(BeNil())

		for j, v := range Distinct(m) {
			single, err := Count(m, v)
			Expect(err).Should(BeNil())
			Expect(single.Columns[0]).Should(Equal(all.Columns[j]))
			for i := range single.Data {
				Expect(single.Data[i][0]).Should(Equal(all.Data[i][j]))
			}
		}

		for i, row := range all.Data {
			total := 0.0
			for _, c := range row {
				total += c
			}
			valid := len(timeseries.ValidIndices(m.Data[i]))
			Expect(total).Should(Equal(float64(valid)))
		}
	})

	It("should return the same ranks when ranking a tie-free rank row", func() {
		perm := newTestMatrix([][]float64{{3, 1, nan, 4, 2}})
		once, err := OrdinalRank(perm)
		Expect(err).Should(BeNil())
		twice, err := OrdinalRank(once)
		Expect(err).Should(BeNil())
		Expect(sameData(once.Data, twice.Data)).Should(BeTrue())
		Expect(sameData(once.Data, perm.Data)).Should(BeTrue())
	})

	It("should not mutate the input", func() {
		before := m.Copy()
		for _, name := range Operators() {
			_, err := New(nil).Run(name, m, Params{})
			Expect(err).Should(BeNil())
		}
		Expect(sameData(before.Data, m.Data)).Should(BeTrue())
		Expect(before.Columns).Should(Equal(m.Columns))
	})

	Describe("a table with an empty row", func() {
		table := newTestMatrix([][]float64{
			{1, nan, 3},
			{nan, nan, nan},
		})

		It("should return NaN for the empty row mean by default", func() {
			out, err := RowMean(table)
			Expect(err).Should(BeNil())
			Expect(out.Data[0][0]).Should(Equal(2.0))
			Expect(timeseries.IsMissing(out.Data[1][0])).Should(BeTrue())
		})

		It("should fail under the error policy", func() {
			_, err := New(&Options{EmptyRow: EmptyRowError}).RowMean(table)
			Expect(err).Should(MatchError(ContainSubstring(ErrEmptyRow.Error())))
		})

		It("should rank the valid cells only", func() {
			out, err := OrdinalRank(table)
			Expect(err).Should(BeNil())
			Expect(sameData(out.Data, [][]float64{{1, nan, 2}, {nan, nan, nan}})).Should(BeTrue())
		})
	})
})
