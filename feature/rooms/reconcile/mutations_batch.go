package reconcile

// Batch mutation operations. ApplyPlan prefers these so the roster object
// is rewritten once per plan and storage deletes go through the batch API.

import (
	"context"
	"fmt"

	"bas-manager/core/reconcile"
	"bas-manager/feature/rooms/models"

	"github.com/minio/minio-go/v7"
)

// DeleteDBBatch deletes multiple room rows using an IN clause.
func (a *RoomAdapter) DeleteDBBatch(ctx context.Context, keys []string) error {
	if a.db == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	if len(keys) == 0 {
		return nil
	}

	result := a.db.WithContext(ctx).
		Where("room IN ?", keys).
		Delete(&models.Room{})

	if result.Error != nil {
		return fmt.Errorf("failed to batch delete from DB: %w", result.Error)
	}

	return nil
}

// DeleteRosterBatch removes multiple rooms from the roster in one rewrite.
func (a *RoomAdapter) DeleteRosterBatch(ctx context.Context, keys []string) error {
	if a.client == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	if len(keys) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	records, err := a.loadRoster(ctx, a.client, a.bucket, a.data.RosterObject)
	if err != nil {
		return err
	}

	toDelete := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		toDelete[key] = struct{}{}
	}

	kept := make([]models.RosterRecord, 0, len(records))
	for _, rec := range records {
		if _, del := toDelete[rec.Room]; !del {
			kept = append(kept, rec)
		}
	}

	return a.rewriteRoster(ctx, kept)
}

// DeleteStorageBatch deletes multiple rooms' data files via the batch API.
func (a *RoomAdapter) DeleteStorageBatch(ctx context.Context, keys []string) error {
	if a.client == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	if len(keys) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys)*2)
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: a.data.RoomObject(a.data.BASPrefix, key)}
		objectsCh <- minio.ObjectInfo{Key: a.data.RoomObject(a.data.OccupancyPrefix, key)}
	}
	close(objectsCh)

	errorCh := a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{})

	var errors []string
	for err := range errorCh {
		if err.Err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", err.ObjectName, err.Err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("batch delete had %d errors: %v", len(errors), errors)
	}

	return nil
}

// SyncDBBatch updates multiple DB rows from their roster entries.
// The roster is small, so sequential updates are fine here.
func (a *RoomAdapter) SyncDBBatch(ctx context.Context, actions []reconcile.Action) error {
	if a.db == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	for _, action := range actions {
		if err := a.SyncDBFromRoster(ctx, action.Key, action.RosterItem); err != nil {
			return fmt.Errorf("sync failed for %s: %w", action.Key, err)
		}
	}

	return nil
}
