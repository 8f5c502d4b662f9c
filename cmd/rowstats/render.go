package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/sartorproj/gorowstats/rowwise"
	"github.com/sartorproj/gorowstats/timeseries"
)

// renderTable prints res as an aligned text table headed by the operator name.
func renderTable(w io.Writer, res *rowwise.Result, dateFormat string) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", res.Operator); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	if res.Keyed != nil {
		table.SetHeader([]string{"column", "value"})
		for i, key := range res.Keyed.Keys {
			table.Append([]string{key, timeseries.FormatValue(res.Keyed.Values[i])})
		}
		table.Render()
		return nil
	}

	m := res.Matrix
	table.SetHeader(append([]string{"date"}, m.Columns...))
	for i, row := range m.Data {
		record := make([]string, 0, len(row)+1)
		record = append(record, m.Timestamps[i].Format(dateFormat))
		for _, v := range row {
			record = append(record, timeseries.FormatValue(v))
		}
		table.Append(record)
	}
	table.Render()
	return nil
}
