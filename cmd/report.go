package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Rana718/edubench/internal/report"
	"github.com/spf13/cobra"
)

var reportXLSX string

var reportCmd = &cobra.Command{
	Use:   "report <timings.json>",
	Short: "Re-render a saved timing log",
	Long: `Load a timing log saved by a previous run and print the summary
table and bar chart again, optionally re-exporting it as a spreadsheet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timings, err := report.ReadJSON(args[0])
		if err != nil {
			return err
		}
		if len(timings) == 0 {
			return fmt.Errorf("timing log %s is empty", args[0])
		}

		report.PrintSummary(timings)
		fmt.Println()
		report.PrintBarChart(timings)

		if reportXLSX != "" {
			path := reportXLSX
			if !strings.HasSuffix(path, ".xlsx") {
				path = filepath.Join(path, strings.TrimSuffix(filepath.Base(args[0]), ".json")+".xlsx")
			}
			if err := report.WriteXLSX(path, timings); err != nil {
				return err
			}
			fmt.Printf("Timings saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "Also export the log as a spreadsheet (file or directory)")
}
