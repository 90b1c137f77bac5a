package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║   ███████╗██████╗ ██╗   ██╗                          ║",
		"║   ██╔════╝██╔══██╗██║   ██║                          ║",
		"║   █████╗  ██║  ██║██║   ██║                          ║",
		"║   ██╔══╝  ██║  ██║██║   ██║                          ║",
		"║   ███████╗██████╔╝╚██████╔╝ bench                    ║",
		"║   ╚══════╝╚═════╝  ╚═════╝                           ║",
		"║                                                      ║",
		"║   ⚡ Document-store CRUD latency harness ⚡           ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "edubench",
	Short: "Benchmark a document store's CRUD surface with a synthetic e-learning dataset",
	Long: `
edubench generates a hierarchical synthetic dataset (users, courses,
lessons, quizzes, questions, enrollments), drives it through a document
store one operation at a time, and reports per-phase wall-clock timings.

Store support:
- MongoDB (collections as tables)
- PostgreSQL (JSONB document tables)
- MySQL (JSON document tables)
- SQLite (embedded, JSON document tables)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("edubench CLI version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./edubench.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("edubench.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
