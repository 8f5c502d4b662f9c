package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn string   // Column name for dates (default: first column)
	Columns    []string // Series columns to keep (default: all others)
	DateFormat string   // Date format (default: "2006-01-02")
	Delimiter  rune     // Field delimiter (default: ',')
	SkipRows   int      // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		Delimiter:  ',',
	}
}

// Date layouts tried after the configured one.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

// LoadCSV loads a wide-format table from a CSV file: one date column and one
// column per series.
func LoadCSV(filename string, opts *CSVOptions) (*Matrix, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a wide-format table from an io.Reader.
// Empty cells and the tokens NA, NaN and null become missing values.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Matrix, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: %w", ErrNoData)
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = clean(header[i])
	}

	dateIdx := 0
	if opts.DateColumn != "" {
		dateIdx = indexOf(header, opts.DateColumn)
		if dateIdx < 0 {
			return nil, fmt.Errorf("csv: date column: %w: %q", ErrUnknownColumn, opts.DateColumn)
		}
	}

	var valueIdx []int
	var columns []string
	if len(opts.Columns) > 0 {
		for _, name := range opts.Columns {
			j := indexOf(header, name)
			if j < 0 {
				return nil, fmt.Errorf("csv: %w: %q", ErrUnknownColumn, name)
			}
			valueIdx = append(valueIdx, j)
			columns = append(columns, name)
		}
	} else {
		for j, name := range header {
			if j == dateIdx {
				continue
			}
			valueIdx = append(valueIdx, j)
			columns = append(columns, name)
		}
	}

	var timestamps []time.Time
	var data [][]float64
	line := opts.SkipRows + 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if dateIdx >= len(record) {
			return nil, fmt.Errorf("csv: line %d: %w: missing date field", line, ErrShapeMismatch)
		}
		ts, err := parseDate(clean(record[dateIdx]), opts.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}

		row := make([]float64, len(valueIdx))
		for k, j := range valueIdx {
			if j >= len(record) {
				row[k] = Missing()
				continue
			}
			row[k], err = parseValue(clean(record[j]))
			if err != nil {
				return nil, fmt.Errorf("csv: line %d, column %q: %w", line, columns[k], err)
			}
		}

		timestamps = append(timestamps, ts)
		data = append(data, row)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("csv: %w", ErrNoData)
	}

	return NewMatrix(timestamps, columns, data)
}

// WriteCSV writes m in wide format with a leading "date" column.
func WriteCSV(w io.Writer, m *Matrix, dateFormat string) error {
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}

	writer := csv.NewWriter(w)
	header := append([]string{"date"}, m.Columns...)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i, row := range m.Data {
		record[0] = m.Timestamps[i].Format(dateFormat)
		for j, v := range row {
			record[j+1] = FormatValue(v)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteKeyedCSV writes k as two columns: key and value.
func WriteKeyedCSV(w io.Writer, k *Keyed) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"column", "value"}); err != nil {
		return err
	}
	for i, key := range k.Keys {
		if err := writer.Write([]string{key, FormatValue(k.Values[i])}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// FormatValue renders v in its shortest exact form, or "NaN" when missing.
func FormatValue(v float64) string {
	if IsMissing(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseValue(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return Missing(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseDate(s, preferred string) (time.Time, error) {
	var lastErr error
	if preferred != "" {
		ts, err := time.Parse(preferred, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	for _, layout := range dateFormats {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func indexOf(values []string, name string) int {
	for i, v := range values {
		if v == name {
			return i
		}
	}
	return -1
}
