package cmd

import (
	"context"
	"fmt"

	"bas-manager/core/config"
	"bas-manager/core/logger"
	"bas-manager/core/storage"
	"bas-manager/core/timeseries"
	"bas-manager/feature/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ingestAll bool
	ingestOA  bool
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [room]",
	Short: "Ingest BAS readings into the time-series store",
	Long: `Reads room data files from storage and writes their readings to InfluxDB.

Examples:
  # Ingest a single room
  ingest A3-70

  # Ingest every room data file
  ingest --all

  # Ingest the outside-air series
  ingest --oa`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	RootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().BoolVar(&ingestAll, "all", false, "Ingest every room data file")
	ingestCmd.Flags().BoolVar(&ingestOA, "oa", false, "Ingest the outside-air series")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !ingestAll && !ingestOA && len(args) == 0 {
		return fmt.Errorf("specify a room, --all, or --oa")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	// Time-series connection is required for ingest.
	writer, err := timeseries.NewWriter(ctx, cfg.Influx)
	if err != nil {
		return fmt.Errorf("failed to connect to time-series store: %w", err)
	}
	defer writer.Close()

	if err := writer.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure time-series bucket: %w", err)
	}

	svc := telemetry.NewService(client, cfg.Storage.Bucket, cfg.Data, writer, l)

	switch {
	case ingestAll:
		l.Info("Ingesting all room data files...")
		reports, err := svc.IngestAll(ctx)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		for _, r := range reports {
			logIngestReport(l, r)
		}
		l.Info("Ingest complete", zap.Int("sources", len(reports)))
	case ingestOA:
		l.Info("Ingesting outside-air series...")
		report, err := svc.IngestOutsideAir(ctx)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		logIngestReport(l, report)
	default:
		room := args[0]
		l.Info("Ingesting room data file...", zap.String("room", room))
		report, err := svc.IngestRoom(ctx, room)
		if err != nil {
			return fmt.Errorf("ingest failed: %w", err)
		}
		logIngestReport(l, report)
	}

	return nil
}

func logIngestReport(l *zap.Logger, r *telemetry.IngestReport) {
	l.Info("Ingest report",
		zap.String("source", r.Source),
		zap.Int("rows", r.Rows),
		zap.Int("written", r.Written),
		zap.Int("row_errors", r.RowErrors),
	)
}
