package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bas-manager/core/config"
	"bas-manager/core/database"
	"bas-manager/core/logger"
	"bas-manager/core/storage"
	"bas-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool
var jsonFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the dataset storage",
	Long:  `Checks if the storage bucket has the required layout and other integrity requirements.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), "")
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket layout",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), "structure")
	},
}

// namingCmd represents the integrity naming command
var namingCmd = &cobra.Command{
	Use:   "naming",
	Short: "Check and fix stray data file names",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), "naming")
	},
}

// oaCmd represents the integrity oa command
var oaCmd = &cobra.Command{
	Use:   "oa",
	Short: "Check outside-air data continuity",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), "oa")
	},
}

// occupancyCmd represents the integrity occupancy command
var occupancyCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Check occupancy data consistency",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), "occupancy")
	},
}

// databaseCheckCmd represents the integrity database command
var databaseCheckCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the rooms table schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), "database")
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd)
	integrityCmd.AddCommand(namingCmd)
	integrityCmd.AddCommand(oaCmd)
	integrityCmd.AddCommand(occupancyCmd)
	integrityCmd.AddCommand(databaseCheckCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing layout prefixes")
	namingCmd.Flags().BoolVar(&fixFlag, "fix", false, "Delete stray data files")
	integrityCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output detailed JSON format")
}

// runIntegrityChecks runs a single named check, or all of them when only is empty.
func runIntegrityChecks(ctx context.Context, only string) {
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

	// Create Storage Client
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

	svc := integrity.NewService(store, cfg.Storage.Bucket, cfg.Data, logg, db)

	runAll := only == ""

	if runAll || only == "structure" {
		logg.Info("Checking bucket layout...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Bucket layout is intact.")
		} else {
			logg.Warn("Missing layout entries detected", zap.Strings("missing", missing))

			if only == "structure" && fixFlag {
				logg.Info("Creating missing prefixes...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Layout fixed successfully.")
			} else if only == "structure" {
				logg.Info("Run with --fix to create missing prefixes.")
			}
		}
	}

	if runAll || only == "naming" {
		logg.Info("Checking data file names...")
		strays, err := svc.CheckNaming(ctx)
		if err != nil {
			logg.Fatal("Naming check failed", zap.Error(err))
		}

		if len(strays) == 0 {
			logg.Info("All data files follow the room naming scheme.")
		} else {
			logg.Warn("Stray data files detected", zap.Strings("strays", strays))

			if only == "naming" && fixFlag {
				logg.Info("Deleting stray files...")
				if err := svc.FixNaming(ctx, strays); err != nil {
					logg.Fatal("Failed to delete stray files", zap.Error(err))
				}
				logg.Info("Stray files deleted successfully.")
			} else if only == "naming" {
				logg.Info("Run with --fix to delete stray files.")
			}
		}
	}

	if runAll || only == "oa" {
		logg.Info("Checking outside-air data...")
		report, err := svc.CheckOutsideAir(ctx)
		if err != nil {
			logg.Fatal("Outside-air check failed", zap.Error(err))
		}

		if jsonFlag {
			printJSON(report)
		} else {
			logg.Info("Outside-air report",
				zap.Int("rows", report.Rows),
				zap.Int("row_errors", report.RowErrors),
				zap.Bool("starts_on_expected_date", report.StartsOnExpectedDate),
				zap.Int("gaps", len(report.Gaps)),
				zap.Int("missing_slots", report.MissingSlots),
			)
			if !report.StartsOnExpectedDate {
				logg.Warn("Outside-air data does not start on the expected date",
					zap.Time("first_timestamp", report.FirstTimestamp))
			}
		}
	}

	if runAll || only == "occupancy" {
		logg.Info("Checking occupancy data...")
		report, err := svc.CheckOccupancy(ctx)
		if err != nil {
			logg.Fatal("Occupancy check failed", zap.Error(err))
		}

		if jsonFlag {
			printJSON(report)
		} else if report.OK() {
			logg.Info("Occupancy data is consistent.", zap.Int("rooms_checked", report.RoomsChecked))
		} else {
			logg.Warn("Occupancy inconsistencies detected",
				zap.Int("rooms_checked", report.RoomsChecked),
				zap.Strings("not_in_bas", report.NotInBAS),
				zap.Strings("not_rostered", report.NotRostered),
				zap.Strings("sensor_not_listed", report.SensorNotListed),
			)
		}
	}

	if runAll || only == "database" {
		if db == nil {
			logg.Warn("Skipping database check: no database connection.")
			return
		}

		logg.Info("Checking rooms table schema...")
		report, err := svc.CheckDatabase()
		if err != nil {
			logg.Fatal("Database check failed", zap.Error(err))
		}

		if jsonFlag {
			printJSON(report)
		} else if report.Matched {
			logg.Info("Rooms table schema matches the model.", zap.String("table", report.Table))
		} else {
			logg.Warn("Rooms table schema mismatch",
				zap.String("table", report.Table),
				zap.Strings("missing_columns", report.MissingColumns),
				zap.Strings("extra_columns", report.ExtraColumns),
			)
		}
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
