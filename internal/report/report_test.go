package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Rana718/edubench/internal/bench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTimings() []bench.Timing {
	return []bench.Timing{
		{Name: "Drop Tables", Duration: 1200 * time.Millisecond},
		{Name: "Create Tables", Duration: 3 * time.Second},
		{Name: "Insert All Data", Duration: 42*time.Second + 500*time.Millisecond},
	}
}

func TestWriteAndReadJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "timings.json")

	timings := sampleTimings()
	require.NoError(t, WriteJSON(path, timings))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	require.Len(t, got, len(timings))

	for i := range timings {
		assert.Equal(t, timings[i].Name, got[i].Name)
		assert.InDelta(t, timings[i].Seconds(), got[i].Seconds(), 0.001)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timings.csv")

	require.NoError(t, WriteCSV(path, sampleTimings()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Operation,Duration (seconds)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Drop Tables,"))
	assert.True(t, strings.HasPrefix(lines[3], "Insert All Data,"))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timings.xlsx")

	require.NoError(t, WriteXLSX(path, sampleTimings()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Operation", header)

	name, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Create Tables", name)
}

func TestReadJSONMissingFile(t *testing.T) {
	_, err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
