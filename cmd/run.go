package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Rana718/edubench/internal/bench"
	"github.com/Rana718/edubench/internal/config"
	"github.com/Rana718/edubench/internal/datagen"
	"github.com/Rana718/edubench/internal/models"
	"github.com/Rana718/edubench/internal/report"
	"github.com/Rana718/edubench/internal/store"
	"github.com/Rana718/edubench/internal/store/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	runScale    int
	runPrompt   bool
	runProvider string
	runSeed     int64
	runOut      string
	runNoExport bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full benchmark sequence",
	Long: `Execute the six benchmark phases in order: drop schema, create
schema, insert all data, retrieve all data, update all data, delete all
data. Each phase is timed individually and the results are printed and
exported when the run completes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if runProvider != "" {
			cfg.Database.Provider = runProvider
		}
		if runOut != "" {
			cfg.ExportPath = runOut
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		scale := runScale
		if runPrompt {
			scale = promptForScale()
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore(st)

		gen := datagen.New(runSeed)
		if runSeed == 0 {
			gen = datagen.NewRandom()
		}

		runner := bench.NewRunner()
		driver := bench.NewDriver(st, gen, cfg, runner)

		color.Cyan("🚀 Starting benchmark against %s (scale ×%d)", cfg.Database.Provider, scale)
		fmt.Println()

		runErr := driver.Run(context.Background(), scale)

		// Completed phases keep their timings even when a later phase
		// failed.
		timings := runner.Timings()
		if len(timings) > 0 {
			fmt.Println()
			report.PrintSummary(timings)
			fmt.Println()
			report.PrintBarChart(timings)
		}

		if runErr != nil {
			return runErr
		}

		color.Green("✅ Benchmark completed")

		if !runNoExport {
			if err := exportTimings(cfg, scale, timings); err != nil {
				return err
			}
		}
		return nil
	},
}

func promptForScale() int {
	fmt.Print("Enter how many times to multiply the amount of data: ")
	return parseScale(os.Stdin)
}

// parseScale reads one line and interprets it as the scale multiplier.
// Unreadable or non-integer input warns and falls back to 1.
func parseScale(r io.Reader) int {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		color.Yellow("⚠️  Could not read input. Defaulting to 1.")
		return 1
	}

	scale, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		color.Yellow("⚠️  Provided multiplication factor is not an integer. Defaulting to 1.")
		return 1
	}
	return scale
}

func openStore(cfg *config.Config) (store.Store, error) {
	opts := common.Options{
		Tables:     models.Tables(),
		DDLTimeout: time.Duration(cfg.Schema.TimeoutMs) * time.Millisecond,
		DDLPoll:    time.Duration(cfg.Schema.PollMs) * time.Millisecond,
	}

	st, err := store.New(cfg.Database.Provider, opts)
	if err != nil {
		return nil, err
	}

	var dbURL string
	if cfg.Database.Provider != "memory" {
		dbURL, err = cfg.GetDatabaseURL()
		if err != nil {
			return nil, err
		}
	}

	if err := st.Connect(context.Background(), dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Database.Provider, err)
	}
	return st, nil
}

// closeStore releases the session exactly once; a close failure is
// reported but never masks the run's own error.
func closeStore(st store.Store) {
	if err := st.Close(); err != nil {
		color.Yellow("⚠️  Failed to close store session: %v", err)
	}
}

func exportTimings(cfg *config.Config, scale int, timings []bench.Timing) error {
	base := fmt.Sprintf("timings_%s_%d", cfg.Database.Provider, scale)

	xlsxPath := filepath.Join(cfg.ExportPath, base+".xlsx")
	if err := report.WriteXLSX(xlsxPath, timings); err != nil {
		return err
	}
	csvPath := filepath.Join(cfg.ExportPath, base+".csv")
	if err := report.WriteCSV(csvPath, timings); err != nil {
		return err
	}
	jsonPath := filepath.Join(cfg.ExportPath, base+".json")
	if err := report.WriteJSON(jsonPath, timings); err != nil {
		return err
	}

	color.Green("💾 Timings saved to %s, %s and %s", xlsxPath, csvPath, jsonPath)
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&runScale, "scale", 1, "Multiply top-level dataset counts by this factor")
	runCmd.Flags().BoolVar(&runPrompt, "prompt", false, "Ask for the scale multiplier interactively")
	runCmd.Flags().StringVar(&runProvider, "provider", "", "Override the configured store provider")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "Seed for the data generator (0 = random)")
	runCmd.Flags().StringVar(&runOut, "out", "", "Override the export directory")
	runCmd.Flags().BoolVar(&runNoExport, "no-export", false, "Skip writing timing exports")
}
