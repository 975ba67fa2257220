package series_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/trendclust"
	"github.com/katalvlaran/trendclust/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV_HappyPath(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Time, Open, Val",
		"2024-01-02 09:30:00, 1, 10.5",
		"2024-01-02 10:00:00, 1, 10.75",
		",,",
		"2024-01-02T10:30:00Z, 1, 11",
	}, "\n")
	s, err := series.LoadCSV(strings.NewReader(in), series.DefaultColumns())
	require.NoError(t, err)
	require.Len(t, s, 3)

	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC), s[0].Time)
	assert.Equal(t, []float64{10.5, 10.75, 11}, s.Values())
}

func TestLoadCSV_UnixSeconds(t *testing.T) {
	t.Parallel()

	in := "ts,price\n1704187800,1.25\n1704189600,1.5\n"
	s, err := series.LoadCSV(strings.NewReader(in), series.Columns{Time: "ts", Value: "price"})
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, time.Unix(1704187800, 0).UTC(), s[0].Time)
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"missing column", "time,close\n2024-01-02,1\n", series.ErrMissingColumn},
		{"bad value", "time,val\n2024-01-02,abc\n", series.ErrBadValue},
		{"bad time", "time,val\nyesterday,1\n", series.ErrBadTime},
		{"short row", "time,val\n2024-01-02\n", series.ErrMissingColumn},
		{"not increasing", "time,val\n2024-01-03,1\n2024-01-02,2\n", series.ErrNotIncreasing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.LoadCSV(strings.NewReader(tc.in), series.DefaultColumns())
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, trendclust.ErrInvalidInput)
		})
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	t.Parallel()

	s, err := series.LoadCSV(strings.NewReader(""), series.DefaultColumns())
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestLoadXLSX_TextAndSerialDates(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"time", "val"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"2024-01-02 09:30:00", 101.5}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"2024-01-02 10:00:00", 102.25}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{45294, 103})) // 2024-01-03 as serial

	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))

	s, err := series.LoadFile(path, series.DefaultColumns(), "")
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, []float64{101.5, 102.25, 103}, s.Values())
	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC), s[0].Time)
	assert.WithinDuration(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), s[2].Time, time.Second)
}

func TestLoadFile_Dispatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "p.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("time,val\n2024-01-02,1\n"), 0o600))

	s, err := series.LoadFile(csvPath, series.DefaultColumns(), "")
	require.NoError(t, err)
	assert.Len(t, s, 1)

	_, err = series.LoadFile(filepath.Join(dir, "p.parquet"), series.DefaultColumns(), "")
	assert.ErrorIs(t, err, series.ErrUnsupportedFormat)
}

func TestWriteCSV_LoadsBack(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	s := series.FromValues(start, 30*time.Minute, []float64{10.5, 10.25, 11})

	var buf strings.Builder
	require.NoError(t, series.WriteCSV(&buf, s, series.DefaultColumns()))
	assert.True(t, strings.HasPrefix(buf.String(), "time,val\n2024-01-02T09:30:00Z,10.5\n"))

	back, err := series.LoadCSV(strings.NewReader(buf.String()), series.DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, s, back)
}
