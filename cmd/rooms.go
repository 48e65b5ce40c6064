package cmd

import (
	"context"
	"fmt"
	"os"

	"bas-manager/core/config"
	"bas-manager/core/database"
	"bas-manager/core/logger"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// roomDetailCmd represents the top-level room command
var roomDetailCmd = &cobra.Command{
	Use:   "room [identifier]",
	Short: "View details and validity of a room",
	Long:  `Checks the presence and matching parameters of a room across Roster, Database, and Storage.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRoomDetailCheck(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(roomDetailCmd)
}

func runRoomDetailCheck(ctx context.Context, identifier string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := rooms.NewService(store, cfg.Storage.Bucket, cfg.Data, logg, db)

	logg.Info("Checking room...", zap.String("identifier", identifier))
	report, err := svc.GetRoomDetail(ctx, identifier)
	if err != nil {
		logg.Fatal("Room detail check failed", zap.Error(err))
	}

	// Pretty Console Output
	fmt.Println("\n--- Room Detail View ---")
	fmt.Printf("Query:           %s\n", identifier)
	fmt.Printf("Room:            %s\n", report.ID)
	fmt.Printf("Occupant:        %s\n", report.Occupant)
	fmt.Printf("Floor:           %s\n", report.Floor)
	fmt.Printf("Sqft:            %d\n", report.Sqft)
	fmt.Println("------------------------")
	fmt.Printf("In Roster:       %v\n", report.InRoster)
	fmt.Printf("In Database:     %v\n", report.InDB)
	fmt.Printf("Data File:       %v\n", report.HasDataFile)
	fmt.Printf("Occupancy File:  %v\n", report.HasOccupancyFile)

	statusColor := "\033[32m" // Green
	if report.IntegrityStatus == "FAIL" {
		statusColor = "\033[31m" // Red
	} else if report.IntegrityStatus == "WARNING" {
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	fmt.Printf("Integrity:       %s%s%s\n", statusColor, report.IntegrityStatus, resetColor)

	if len(report.Mismatches) > 0 {
		fmt.Println("\nMismatches/Errors:")
		for _, m := range report.Mismatches {
			fmt.Printf("- %s\n", m)
		}
	}
	fmt.Println("------------------------")
}
