package reconcile

import (
	"context"
	"fmt"

	"bas-manager/core/storage"

	"gorm.io/gorm"
)

// ReconcileWithPlan performs reconciliation and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(
	ctx context.Context,
	spec *Spec,
	db *gorm.DB,
	client storage.Client,
	bucket string,
	opts Options,
) (*Plan, error) {
	cache, err := GetOrBuildCache(ctx, spec, db, client, bucket)
	if err != nil {
		return nil, err
	}

	results := reconcileFromCache(cache, spec.Adapter)
	summary, actions := buildPlanFromResults(results, cache, opts)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(
	ctx context.Context,
	spec *Spec,
	plan *Plan,
	opts Options,
) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	// Group actions by type for efficient execution
	var (
		deleteDBKeys      []string
		deleteRosterKeys  []string
		deleteStorageKeys []string
		syncActions       []Action
	)

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDeleteDB:
			deleteDBKeys = append(deleteDBKeys, action.Key)
		case ActionDeleteRoster:
			deleteRosterKeys = append(deleteRosterKeys, action.Key)
		case ActionDeleteStorage:
			deleteStorageKeys = append(deleteStorageKeys, action.Key)
		case ActionSyncDB:
			syncActions = append(syncActions, action)
		}
	}

	// DB deletions: prefer batch delete when the adapter supports it
	if len(deleteDBKeys) > 0 {
		type DBBatchDeleter interface {
			DeleteDBBatch(ctx context.Context, keys []string) error
		}
		if batchDeleter, ok := mutator.(DBBatchDeleter); ok {
			if err := batchDeleter.DeleteDBBatch(ctx, deleteDBKeys); err != nil {
				return executed, fmt.Errorf("failed to batch delete DB keys: %w", err)
			}
			executed += len(deleteDBKeys)
		} else {
			for _, key := range deleteDBKeys {
				if err := mutator.DeleteDB(ctx, key); err != nil {
					return executed, fmt.Errorf("failed to delete DB key %s: %w", key, err)
				}
				executed++
			}
		}
	}

	// Roster deletions: prefer batch so the CSV object is rewritten once
	if len(deleteRosterKeys) > 0 {
		type RosterBatchDeleter interface {
			DeleteRosterBatch(ctx context.Context, keys []string) error
		}
		if batchDeleter, ok := mutator.(RosterBatchDeleter); ok {
			if err := batchDeleter.DeleteRosterBatch(ctx, deleteRosterKeys); err != nil {
				return executed, fmt.Errorf("failed to batch delete roster keys: %w", err)
			}
			executed += len(deleteRosterKeys)
		} else {
			for _, key := range deleteRosterKeys {
				if err := mutator.DeleteRoster(ctx, key); err != nil {
					return executed, fmt.Errorf("failed to delete roster key %s: %w", key, err)
				}
				executed++
			}
		}
	}

	// Storage deletions
	if len(deleteStorageKeys) > 0 {
		type StorageBatchDeleter interface {
			DeleteStorageBatch(ctx context.Context, keys []string) error
		}
		if batchDeleter, ok := mutator.(StorageBatchDeleter); ok {
			if err := batchDeleter.DeleteStorageBatch(ctx, deleteStorageKeys); err != nil {
				return executed, fmt.Errorf("failed to batch delete storage keys: %w", err)
			}
			executed += len(deleteStorageKeys)
		} else {
			for _, key := range deleteStorageKeys {
				if err := mutator.DeleteStorage(ctx, key); err != nil {
					return executed, fmt.Errorf("failed to delete storage key %s: %w", key, err)
				}
				executed++
			}
		}
	}

	// Syncs
	if len(syncActions) > 0 {
		type SyncBatcher interface {
			SyncDBBatch(ctx context.Context, actions []Action) error
		}
		if batchSyncer, ok := mutator.(SyncBatcher); ok {
			if err := batchSyncer.SyncDBBatch(ctx, syncActions); err != nil {
				return executed, fmt.Errorf("failed to batch sync DB: %w", err)
			}
			executed += len(syncActions)
		} else {
			for _, action := range syncActions {
				if err := mutator.SyncDBFromRoster(ctx, action.Key, action.RosterItem); err != nil {
					return executed, fmt.Errorf("failed to sync key %s: %w", action.Key, err)
				}
				executed++
			}
		}
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(
	ctx context.Context,
	spec *Spec,
	db *gorm.DB,
	client storage.Client,
	bucket string,
	opts Options,
) (*Plan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, db, client, bucket, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// reconcileFromCache builds results from a cache.
func reconcileFromCache(cache *Cache, adapter Adapter) []Result {
	unionKeys := buildUnion(cache.DBIndex, cache.RosterIndex, cache.StorageSet)

	results := make([]Result, 0, len(unionKeys))
	for key := range unionKeys {
		results = append(results, buildResult(key, cache, adapter))
	}

	return results
}

// buildPlanFromResults generates a summary and action plan from reconciliation results.
func buildPlanFromResults(results []Result, cache *Cache, opts Options) (PlanSummary, []Action) {
	var summary PlanSummary
	var actions []Action

	summary.TotalRooms = len(results)

	for _, result := range results {
		// Count incomplete rooms using OR semantics:
		// a room known to any other source but absent here is "missing".

		if (result.DBPresent || result.RosterPresent) && !result.StoragePresent {
			summary.MissingStorage++
		}
		if (result.DBPresent || result.StoragePresent) && !result.RosterPresent {
			summary.MissingRoster++
		}
		if (result.RosterPresent || result.StoragePresent) && !result.DBPresent {
			summary.MissingDB++
		}

		if len(result.Mismatch) > 0 {
			summary.Mismatches++
		}

		// Plan purge actions: delete if missing in any store
		if opts.DoPurge {
			missingInAny := !result.RosterPresent || !result.StoragePresent || !result.DBPresent
			if missingInAny {
				if result.DBPresent {
					actions = append(actions, Action{
						Type:   ActionDeleteDB,
						Key:    result.ID,
						Reason: getMissingReason(result),
					})
					summary.PurgeActions++
				}
				if result.RosterPresent {
					actions = append(actions, Action{
						Type:   ActionDeleteRoster,
						Key:    result.ID,
						Reason: getMissingReason(result),
					})
					summary.PurgeActions++
				}
				if result.StoragePresent {
					actions = append(actions, Action{
						Type:   ActionDeleteStorage,
						Key:    result.ID,
						Reason: getMissingReason(result),
					})
					summary.PurgeActions++
				}
				// Purge takes precedence: skip sync for this room
				continue
			}
		}

		// Plan sync actions: upsert the DB row from the roster when fields
		// mismatch or the row is missing entirely.
		if opts.DoSync && result.RosterPresent {
			needsSync := len(result.Mismatch) > 0 || !result.DBPresent
			if needsSync {
				reason := "missing in database"
				if len(result.Mismatch) > 0 {
					reason = fmt.Sprintf("mismatch: %v", result.Mismatch)
				}
				actions = append(actions, Action{
					Type:       ActionSyncDB,
					Key:        result.ID,
					Reason:     reason,
					RosterItem: cache.RosterIndex[result.ID],
				})
				summary.SyncActions++
			}
		}
	}

	return summary, actions
}

// getMissingReason builds a reason string for why a room should be purged.
func getMissingReason(result Result) string {
	var missing []string
	if !result.RosterPresent {
		missing = append(missing, "roster")
	}
	if !result.StoragePresent {
		missing = append(missing, "storage")
	}
	if !result.DBPresent {
		missing = append(missing, "database")
	}

	if len(missing) == 0 {
		return "complete"
	}
	return fmt.Sprintf("missing in: %v", missing)
}
