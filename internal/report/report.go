// Package report renders and persists the ordered timing log: console
// summary, bar chart, and xlsx/csv/json exports.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Rana718/edubench/internal/bench"
	"github.com/fatih/color"
	"github.com/xuri/excelize/v2"
)

const barWidth = 40

// PrintSummary writes the per-phase timing table to stdout.
func PrintSummary(timings []bench.Timing) {
	if len(timings) == 0 {
		color.Yellow("⚠️  No timings recorded")
		return
	}

	color.Cyan("📊 Benchmark results:")
	for _, t := range timings {
		fmt.Printf("  %-24s %10.2f s\n", t.Name, t.Seconds())
	}
}

// PrintBarChart renders a horizontal bar chart of the timing log,
// scaled to the slowest phase.
func PrintBarChart(timings []bench.Timing) {
	var max time.Duration
	for _, t := range timings {
		if t.Duration > max {
			max = t.Duration
		}
	}
	if max == 0 {
		return
	}

	bar := color.New(color.FgCyan)
	for _, t := range timings {
		n := int(int64(barWidth) * t.Duration.Nanoseconds() / max.Nanoseconds())
		fmt.Printf("  %-24s ", t.Name)
		bar.Print(strings.Repeat("█", n))
		fmt.Printf(" %.2fs\n", t.Seconds())
	}
}

// WriteXLSX saves the log as a two-column spreadsheet.
func WriteXLSX(path string, timings []bench.Timing) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Operation")
	f.SetCellValue(sheet, "B1", "Duration (seconds)")
	for i, t := range timings {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Seconds())
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx to %s: %w", path, err)
	}
	return nil
}

// WriteCSV saves the log in the same two-column shape as the xlsx.
func WriteCSV(path string, timings []bench.Timing) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Operation", "Duration (seconds)"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range timings {
		if err := w.Write([]string{t.Name, fmt.Sprintf("%.6f", t.Seconds())}); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	return nil
}

type timingRow struct {
	Operation string  `json:"operation"`
	Seconds   float64 `json:"duration_seconds"`
}

// WriteJSON persists the log so a later `report` invocation can
// re-render it without re-running the benchmark.
func WriteJSON(path string, timings []bench.Timing) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	rows := make([]timingRow, len(timings))
	for i, t := range timings {
		rows[i] = timingRow{Operation: t.Name, Seconds: t.Seconds()}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode timings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timings to %s: %w", path, err)
	}
	return nil
}

func ReadJSON(path string) ([]bench.Timing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timings from %s: %w", path, err)
	}

	var rows []timingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode timings: %w", err)
	}

	timings := make([]bench.Timing, len(rows))
	for i, row := range rows {
		timings[i] = bench.Timing{
			Name:     row.Operation,
			Duration: time.Duration(row.Seconds * float64(time.Second)),
		}
	}
	return timings, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
