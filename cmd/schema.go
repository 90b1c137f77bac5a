package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/edubench/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaProvider string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the benchmark schema without running the benchmark",
}

var schemaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the six benchmark tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st storeHandle) error {
			if err := st.CreateSchema(ctx); err != nil {
				return err
			}
			color.Green("✅ Tables created successfully")
			return nil
		})
	},
}

var schemaDropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the six benchmark tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, st storeHandle) error {
			if err := st.DropSchema(ctx); err != nil {
				return err
			}
			color.Green("✅ Tables dropped successfully")
			return nil
		})
	},
}

type storeHandle interface {
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
}

func withStore(fn func(context.Context, storeHandle) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if schemaProvider != "" {
		cfg.Database.Provider = schemaProvider
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore(st)

	return fn(context.Background(), st)
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaCreateCmd)
	schemaCmd.AddCommand(schemaDropCmd)
	schemaCmd.PersistentFlags().StringVar(&schemaProvider, "provider", "", "Override the configured store provider")
}
