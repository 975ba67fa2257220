package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// LoadCSV reads a comma-separated table with a header row from r.
// Numeric timestamps are interpreted as Unix seconds.
func LoadCSV(r io.Reader, cols Columns) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported per row, not by the reader
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("series: read csv: %w", err)
	}

	return fromRows(rows, cols, unixSeconds)
}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string, cols Columns) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadCSV(f, cols)
}

// WriteCSV writes s as a header row plus one RFC3339 time / value row per point,
// in the layout LoadCSV reads back.
func WriteCSV(w io.Writer, s Series, cols Columns) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{cols.Time, cols.Value}); err != nil {
		return fmt.Errorf("series: write csv header: %w", err)
	}
	for i, p := range s {
		rec := []string{p.Time.UTC().Format(time.RFC3339), decimal.NewFromFloat(p.Value).String()}
		if err := cw.Write(rec); err != nil {
			return rowErrorf(i+1, fmt.Errorf("series: write csv: %w", err))
		}
	}
	cw.Flush()

	return cw.Error()
}
