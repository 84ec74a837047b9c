package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/GameLounge-BookingService/internal/config"
	"github.com/m04kA/GameLounge-BookingService/internal/infra/postgres"
	"github.com/m04kA/GameLounge-BookingService/pkg/logger"
)

var (
	configPath string
	outputJSON bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "loungectl",
		Short:        "Operator tooling for the game lounge booking service",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to the TOML config file")
	root.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")

	root.AddCommand(slotsCmd())
	root.AddCommand(availabilityCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(migrateCmd())

	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// cliLogger only surfaces warnings so command output stays readable
func cliLogger(w io.Writer) *logger.Logger {
	return logger.NewWithWriter(w, slog.LevelWarn, nil)
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	return postgres.Open(ctx, cfg.Database)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
