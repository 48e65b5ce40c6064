package reconcile

// Mutation methods implementing reconcile.Mutator interface

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"bas-manager/core/reconcile"
	"bas-manager/feature/rooms/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm/clause"
)

// DeleteDB removes a room row from the database.
func (a *RoomAdapter) DeleteDB(ctx context.Context, key string) error {
	if a.db == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	result := a.db.WithContext(ctx).
		Where("room = ?", key).
		Delete(&models.Room{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete from DB: %w", result.Error)
	}

	return nil
}

// DeleteRoster removes a room from the roster CSV, rewriting the object.
func (a *RoomAdapter) DeleteRoster(ctx context.Context, key string) error {
	return a.DeleteRosterBatch(ctx, []string{key})
}

// DeleteStorage removes a room's data files from storage. Both the BAS
// export and any occupancy-subset copy are removed.
func (a *RoomAdapter) DeleteStorage(ctx context.Context, key string) error {
	if a.client == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	objectKeys := []string{
		a.data.RoomObject(a.data.BASPrefix, key),
		a.data.RoomObject(a.data.OccupancyPrefix, key),
	}

	for _, objectKey := range objectKeys {
		if err := a.client.RemoveObject(ctx, a.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to delete storage object %s: %w", objectKey, err)
		}
	}

	return nil
}

// SyncDBFromRoster upserts the DB row for a room from its roster entry.
// A missing row is created so sync can repair rooms absent from the table.
func (a *RoomAdapter) SyncDBFromRoster(ctx context.Context, key string, item reconcile.RosterItem) error {
	if a.db == nil {
		return fmt.Errorf("mutation context not set, call SetMutationContext first")
	}

	rec := item.(models.RosterRecord)
	room := models.RoomFromRecord(rec)

	result := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&room)

	if result.Error != nil {
		return fmt.Errorf("failed to sync DB from roster: %w", result.Error)
	}

	return nil
}

// rewriteRoster writes the given records back to the roster object.
func (a *RoomAdapter) rewriteRoster(ctx context.Context, records []models.RosterRecord) error {
	var buf bytes.Buffer
	if err := models.WriteRoster(&buf, records); err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	_, err := a.client.PutObject(
		ctx,
		a.bucket,
		a.data.RosterObject,
		io.NopCloser(bytes.NewReader(buf.Bytes())),
		int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"},
	)
	if err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}

	return nil
}
