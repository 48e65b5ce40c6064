package cmd

import (
	"fmt"
	"os"

	"bas-manager/core/config"
	"bas-manager/core/logger"
	"bas-manager/feature/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cleanCmd is the parent command for data cleaning operations.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean raw sensor exports into tidy CSV files",
}

// airthingsCleanCmd cleans a raw Airthings CO2 export.
var airthingsCleanCmd = &cobra.Command{
	Use:   "airthings [input] [output]",
	Short: "Clean a raw Airthings CO2 export",
	Long: `Splits the packed Airthings export rows into Date, Time, and CO2 columns.
Rows without a CO2 value are dropped.`,
	Args: cobra.ExactArgs(2),
	RunE: runAirthingsClean,
}

func init() {
	cleanCmd.AddCommand(airthingsCleanCmd)
	RootCmd.AddCommand(cleanCmd)
}

func runAirthingsClean(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	records, rowErrors, err := telemetry.ParseAirthings(in)
	if err != nil {
		return fmt.Errorf("failed to parse export: %w", err)
	}

	for _, re := range rowErrors {
		l.Warn("Skipping malformed row", zap.Int("line", re.Line), zap.String("error", re.Err))
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := telemetry.WriteCO2(out, records); err != nil {
		return fmt.Errorf("failed to write cleaned CSV: %w", err)
	}

	l.Info("Cleaned Airthings export",
		zap.String("output", output),
		zap.Int("records", len(records)),
		zap.Int("skipped", len(rowErrors)),
	)
	return nil
}
