package timeseries

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `date,AAPL,MSFT,GOOG
2020-01-01,100,200,
2020-01-02,101,NA,301
2020-01-03,102,202,NaN`

	m, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if m.Rows() != 3 || m.Cols() != 3 {
		t.Fatalf("Expected 3x3, got %dx%d", m.Rows(), m.Cols())
	}

	if m.Columns[0] != "AAPL" || m.Columns[2] != "GOOG" {
		t.Errorf("Unexpected columns: %v", m.Columns)
	}

	// Missing tokens are kept as missing cells, not skipped
	if !IsMissing(m.Data[0][2]) || !IsMissing(m.Data[1][1]) || !IsMissing(m.Data[2][2]) {
		t.Errorf("Expected missing cells, got %v", m.Data)
	}

	if m.Data[1][2] != 301 {
		t.Errorf("Expected 301, got %f", m.Data[1][2])
	}

	if m.Timestamps[2].Day() != 3 {
		t.Errorf("Expected day 3, got %v", m.Timestamps[2])
	}
}

func TestLoadCSVSelectedColumns(t *testing.T) {
	csvData := `Beer,ds,Cement,Gas
100,2020-01-01,200,50
110,2020-01-02,210,55`

	opts := DefaultCSVOptions()
	opts.DateColumn = "ds"
	opts.Columns = []string{"Gas", "Beer"}

	m, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if m.Cols() != 2 || m.Columns[0] != "Gas" {
		t.Errorf("Unexpected columns: %v", m.Columns)
	}
	if m.Data[1][0] != 55 || m.Data[1][1] != 110 {
		t.Errorf("Unexpected row: %v", m.Data[1])
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"ds","a","b"
"2020-01-01","1000000","2"
"2020-01-02","1000100","3"`

	m, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if m.Rows() != 2 || m.Data[1][0] != 1000100 {
		t.Errorf("Unexpected data: %v", m.Data)
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		opts    *CSVOptions
		want    error
	}{
		{"empty", ``, nil, ErrNoData},
		{"header only", "date,a\n", nil, ErrNoData},
		{"unknown column", "date,a\n2020-01-01,1\n", &CSVOptions{Columns: []string{"z"}}, ErrUnknownColumn},
		{"unknown date column", "date,a\n2020-01-01,1\n", &CSVOptions{DateColumn: "when"}, ErrUnknownColumn},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tc.csvData), tc.opts)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := LoadCSVFromReader(strings.NewReader("date,a\n2020-01-01,abc\n"), nil); err == nil {
		t.Error("Expected parse error for non-numeric cell")
	}
}

func TestLoadCSVDateFormats(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{
			"ISO format",
			`ds,y
2020-01-01,100
2020-01-02,101`,
		},
		{
			"Year only",
			`ds,y
2020,100
2021,101`,
		},
		{
			"Timestamp",
			`ds,y
2020-01-01T09:30:00,100
2020-01-01T10:30:00,101`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := LoadCSVFromReader(strings.NewReader(tc.csvData), DefaultCSVOptions())
			if err != nil {
				t.Fatalf("Failed to load CSV: %v", err)
			}

			if m.Rows() != 2 {
				t.Errorf("Expected 2 rows, got %d", m.Rows())
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	csvData := `date,a,b
2020-01-01,1.5,NaN
2020-01-02,2,3`

	m, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, m, ""); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if buf.String() != csvData+"\n" {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	k := &Keyed{Keys: []string{"a", "b"}, Values: []float64{1.75, Missing()}}
	if err := WriteKeyedCSV(&buf, k); err != nil {
		t.Fatalf("WriteKeyedCSV failed: %v", err)
	}
	if buf.String() != "column,value\na,1.75\nb,NaN\n" {
		t.Errorf("Unexpected keyed output:\n%s", buf.String())
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
