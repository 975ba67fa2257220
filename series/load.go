// SPDX-License-Identifier: MIT
// Package: trendclust/series
//
// load.go — tabular ingestion shared by the CSV and XLSX loaders.
//
// Contract:
//   - Columns are selected by header name (case-insensitive, trimmed).
//   - Values are parsed as exact decimals, then converted to float64.
//   - Blank rows are skipped; any other malformed row fails the whole load.
//   - The loaded series is validated (strictly increasing timestamps).

package series

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Columns names the header cells of the time and value columns.
type Columns struct {
	Time  string
	Value string
}

// DefaultColumns returns the "time" / "val" header pair.
func DefaultColumns() Columns {
	return Columns{Time: "time", Value: "val"}
}

// timeLayouts are tried in order before numeric fallbacks.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
}

// numericTime converts a numeric cell (unix seconds, excel serial, ...) to a time.
type numericTime func(float64) (time.Time, error)

// unixSeconds interprets a numeric cell as seconds since the Unix epoch.
func unixSeconds(v float64) (time.Time, error) {
	sec := int64(v)
	nsec := int64((v - float64(sec)) * 1e9)

	return time.Unix(sec, nsec).UTC(), nil
}

// LoadFile dispatches on the file extension: .csv/.txt → LoadCSVFile,
// .xlsx/.xlsm → LoadXLSX (sheet "" means the first sheet).
func LoadFile(path string, cols Columns, sheet string) (Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSVFile(path, cols)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet, cols)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// fromRows converts a header row plus data rows into a validated Series.
func fromRows(rows [][]string, cols Columns, numeric numericTime) (Series, error) {
	if len(rows) == 0 {
		return Series{}, nil
	}
	ti, err := columnIndex(rows[0], cols.Time)
	if err != nil {
		return nil, err
	}
	vi, err := columnIndex(rows[0], cols.Value)
	if err != nil {
		return nil, err
	}

	out := make(Series, 0, len(rows)-1)
	var p Point
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		if ti >= len(row) || vi >= len(row) {
			return nil, rowErrorf(r+1, ErrMissingColumn)
		}
		if p.Time, err = parseTime(row[ti], numeric); err != nil {
			return nil, rowErrorf(r+1, err)
		}
		if p.Value, err = parseValue(row[vi]); err != nil {
			return nil, rowErrorf(r+1, err)
		}
		out = append(out, p)
	}
	if err = out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// columnIndex finds name in header (case-insensitive).
func columnIndex(header []string, name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", name, ErrMissingColumn)
}

// blank reports whether every cell of row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// parseValue parses a decimal cell into a float64.
func parseValue(cell string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", cell, ErrBadValue)
	}
	f, _ := d.Float64() // inexact conversions are acceptable for prices

	return f, nil
}

// parseTime tries the textual layouts, then the numeric fallback.
func parseTime(cell string, numeric numericTime) (time.Time, error) {
	s := strings.TrimSpace(cell)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if numeric != nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			if t, err := numeric(v); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%q: %w", cell, ErrBadTime)
}
