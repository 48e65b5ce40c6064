package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"bas-manager/core/config"
	"bas-manager/core/database"
	"bas-manager/core/logger"
	"bas-manager/core/reconcile"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile rooms command
	purgeRooms  bool
	syncRooms   bool
	dryRunRooms bool
	yesConfirm  bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile rooms between roster, database, and storage",
	Long: `Reconcile rooms to detect missing entries, orphans, and mismatches.
Supports optional purge (delete missing) and sync (repair mismatches) operations.`,
}

// roomsReconcileCmd performs room reconciliation with optional purge/sync.
var roomsReconcileCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Reconcile rooms (report + optionally purge/sync)",
	Long: `Reconcile rooms across the roster CSV, database, and storage.

Reports missing rooms, orphans, and field mismatches.
Optionally purge (delete) rooms missing in any store, or sync (repair) mismatches.

Examples:
  # Report only (dry-run)
  reconcile rooms

  # Purge missing rooms (with interactive confirmation)
  reconcile rooms --purge

  # Purge with auto-confirm (non-interactive)
  reconcile rooms --purge --yes

  # Sync mismatches with auto-confirm
  reconcile rooms --sync --yes

  # Both purge and sync
  reconcile rooms --purge --sync --yes`,
	RunE: runRoomsReconcile,
}

func init() {
	reconcileCmd.AddCommand(roomsReconcileCmd)

	roomsReconcileCmd.Flags().BoolVar(&purgeRooms, "purge", false, "Enable purge (delete rooms missing in any store)")
	roomsReconcileCmd.Flags().BoolVar(&syncRooms, "sync", false, "Enable sync (update DB fields from the roster)")
	roomsReconcileCmd.Flags().BoolVar(&dryRunRooms, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	roomsReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runRoomsReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting room reconciliation")

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	// The service wires the adapter and its mutation context.
	svc := rooms.NewService(client, cfg.Storage.Bucket, cfg.Data, l, db)

	// No caching to prevent stale data after DB changes
	spec := svc.ReconcileSpec(0)

	// Build reconcile options
	opts := reconcile.Options{
		DoPurge:   purgeRooms,
		DoSync:    syncRooms,
		DryRun:    dryRunRooms,
		Confirmed: false, // Will be set after confirmation prompt
	}

	// Step 1: Plan (always runs)
	l.Info("Planning reconciliation...")
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, db, client, cfg.Storage.Bucket, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	// Step 2: Print report
	printReconcileReport(l, plan)

	// Step 3: Check if actions are requested
	if !purgeRooms && !syncRooms {
		l.Info("No actions requested. Use --purge to delete incomplete rooms or --sync to repair mismatches.")
		return nil
	}

	// Step 4: Apply (if confirmed)
	if !dryRunRooms {
		numberActions := len(plan.Actions)
		if numberActions == 0 {
			l.Info("No actions required based on current flags.")
			return nil
		}

		// Check confirmation
		confirmed := confirmDestructiveAction()
		if !confirmed {
			l.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		opts.Confirmed = true

		// Execute actions
		l.Info("Applying actions...")
		executed, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
		if err != nil {
			return fmt.Errorf("failed to apply plan: %w", err)
		}

		l.Info("Successfully executed actions", zap.Int("count", executed))
	} else {
		l.Info("Dry-run mode: No changes were made.")
	}

	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_rooms", s.TotalRooms),
		zap.Int("missing_roster", s.MissingRoster),
		zap.Int("missing_storage", s.MissingStorage),
		zap.Int("missing_db", s.MissingDB),
		zap.Int("mismatches", s.Mismatches),
	)

	if len(plan.Actions) > 0 {
		l.Info("Planned actions",
			zap.Int("purge_actions", s.PurgeActions),
			zap.Int("sync_actions", s.SyncActions),
			zap.Int("total_actions", len(plan.Actions)),
		)

		// Show sample of actions (max 5 for logger)
		maxShow := 5
		if len(plan.Actions) < maxShow {
			maxShow = len(plan.Actions)
		}
		for i := 0; i < maxShow; i++ {
			action := plan.Actions[i]
			l.Info("Sample action",
				zap.String("type", string(action.Type)),
				zap.String("key", action.Key),
				zap.String("reason", action.Reason),
			)
		}
		if len(plan.Actions) > maxShow {
			l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
		}
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
