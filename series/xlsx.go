package series

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of an Excel workbook. An empty sheet name
// selects the first sheet. Date cells are read raw and converted from Excel
// serial numbers (1900 date system).
func LoadXLSX(path, sheet string, cols Columns) (Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Series{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("series: read sheet %q: %w", sheet, err)
	}

	return fromRows(rows, cols, excelSerial)
}

// excelSerial converts an Excel serial date to UTC.
func excelSerial(v float64) (time.Time, error) {
	t, err := excelize.ExcelDateToTime(v, false)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}
