package reconcile

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"sync"

	"bas-manager/core/dataset"
	"bas-manager/core/reconcile"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// RoomAdapter implements the reconcile.Adapter interface for rooms.
type RoomAdapter struct {
	data dataset.Config

	// Mutation context, set via SetMutationContext before applying plans.
	mu     sync.Mutex
	db     *gorm.DB
	client storage.Client
	bucket string
}

// NewAdapter creates a new room adapter.
func NewAdapter(data dataset.Config) *RoomAdapter {
	return &RoomAdapter{data: data}
}

// SetMutationContext provides the handles needed for purge/sync operations.
func (a *RoomAdapter) SetMutationContext(db *gorm.DB, client storage.Client, bucket string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.db = db
	a.client = client
	a.bucket = bucket
}

// Name returns the unique name of this adapter.
func (a *RoomAdapter) Name() string {
	return "rooms"
}

// LoadDBIndex loads all room rows from the database.
func (a *RoomAdapter) LoadDBIndex(ctx context.Context, db *gorm.DB) (map[string]reconcile.DBItem, error) {
	index := make(map[string]reconcile.DBItem)

	// A DB is optional; without one every room reports as missing there.
	if db == nil {
		return index, nil
	}

	var rows []models.Room
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}

	for _, row := range rows {
		index[row.ID] = row
	}

	return index, nil
}

// LoadRosterIndex loads the curated roster CSV from storage.
func (a *RoomAdapter) LoadRosterIndex(ctx context.Context, client storage.Client, bucket, objectName string) (map[string]reconcile.RosterItem, error) {
	records, err := a.loadRoster(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}

	index := make(map[string]reconcile.RosterItem, len(records))
	for _, rec := range records {
		index[rec.Room] = rec
	}

	return index, nil
}

// LoadStorageSet lists all per-room data files under the prefix.
func (a *RoomAdapter) LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix, extension string) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	opts := minio.ListObjectsOptions{
		Prefix:    strings.TrimSuffix(prefix, "/") + "/",
		Recursive: true,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if key, ok := a.ExtractStorageKey(obj.Key, extension); ok {
			set[key] = struct{}{}
		}
	}

	return set, nil
}

// ExtractDBKey returns the room ID from a DB item.
func (a *RoomAdapter) ExtractDBKey(item reconcile.DBItem) string {
	return item.(models.Room).ID
}

// ExtractRosterKey returns the room ID from a roster item.
func (a *RoomAdapter) ExtractRosterKey(item reconcile.RosterItem) string {
	return item.(models.RosterRecord).Room
}

// ExtractStorageKey parses a storage object key into a room ID.
func (a *RoomAdapter) ExtractStorageKey(objectKey, extension string) (key string, ok bool) {
	if extension != "" && !strings.HasSuffix(objectKey, extension) {
		return "", false
	}
	return a.data.RoomFromObjectKey(objectKey)
}

// ResolveName returns the display name for a room: the occupant when known,
// otherwise the room ID.
func (a *RoomAdapter) ResolveName(dbItem reconcile.DBItem, rosterItem reconcile.RosterItem) string {
	if rosterItem != nil {
		rec := rosterItem.(models.RosterRecord)
		if rec.Occupant != "" {
			return rec.Occupant
		}
		return rec.Room
	}
	if dbItem != nil {
		row := dbItem.(models.Room)
		if row.Occupant != "" {
			return row.Occupant
		}
		return row.ID
	}
	return ""
}

// CompareFields compares the DB row against the roster record.
func (a *RoomAdapter) CompareFields(dbItem reconcile.DBItem, rosterItem reconcile.RosterItem) []string {
	db := dbItem.(models.Room)
	roster := rosterItem.(models.RosterRecord)

	var mismatches []string

	if db.Floor != roster.Floor {
		mismatches = append(mismatches, fmt.Sprintf("floor: roster='%s' db='%s'", roster.Floor, db.Floor))
	}
	if db.Sqft != roster.Sqft {
		mismatches = append(mismatches, fmt.Sprintf("sqft: roster=%d db=%d", roster.Sqft, db.Sqft))
	}
	if db.Occupant != roster.Occupant {
		mismatches = append(mismatches, fmt.Sprintf("occupant: roster='%s' db='%s'", roster.Occupant, db.Occupant))
	}
	if db.Professor != roster.Professor {
		mismatches = append(mismatches, fmt.Sprintf("professor: roster='%s' db='%s'", roster.Professor, db.Professor))
	}
	if db.HasOccupancySensor != roster.HasOccupancySensor {
		mismatches = append(mismatches, fmt.Sprintf("has_occupancy_sensor: roster=%v db=%v", roster.HasOccupancySensor, db.HasOccupancySensor))
	}
	if db.SensorStatus != roster.SensorStatus {
		mismatches = append(mismatches, fmt.Sprintf("sensor_status: roster='%s' db='%s'", roster.SensorStatus, db.SensorStatus))
	}

	return mismatches
}

// QueryDB performs a targeted database lookup.
func (a *RoomAdapter) QueryDB(ctx context.Context, db *gorm.DB, query reconcile.Query) (reconcile.DBItem, error) {
	if db == nil {
		return nil, nil
	}

	var row models.Room

	if query.ID != "" {
		err := db.WithContext(ctx).Where("room = ?", query.ID).First(&row).Error
		if err == nil {
			return row, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if query.Occupant != "" {
		err := db.WithContext(ctx).Where("occupant = ?", query.Occupant).First(&row).Error
		if err == nil {
			return row, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	return nil, nil
}

// QueryRoster performs a targeted roster lookup.
// The roster is small, so the whole object is parsed.
func (a *RoomAdapter) QueryRoster(ctx context.Context, client storage.Client, bucket, objectName string, query reconcile.Query) (reconcile.RosterItem, error) {
	records, err := a.loadRoster(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if query.ID != "" && rec.Room == query.ID {
			return rec, nil
		}
		if query.Occupant != "" && rec.Occupant == query.Occupant {
			return rec, nil
		}
	}

	return nil, nil
}

// CheckStorage checks if a specific room's data file exists in storage.
func (a *RoomAdapter) CheckStorage(ctx context.Context, client storage.Client, bucket, prefix, extension string, key string) (bool, error) {
	objectKey := a.data.RoomObject(prefix, key)

	opts := minio.ListObjectsOptions{
		Prefix:  objectKey,
		MaxKeys: 1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return false, obj.Err
		}
		if obj.Key == objectKey {
			return true, nil
		}
	}

	return false, nil
}

// GetMetadata returns room metadata for the reconcile result.
// Roster values take precedence over DB values.
func (a *RoomAdapter) GetMetadata(dbItem reconcile.DBItem, rosterItem reconcile.RosterItem) map[string]string {
	var rec models.RosterRecord
	switch {
	case rosterItem != nil:
		rec = rosterItem.(models.RosterRecord)
	case dbItem != nil:
		rec = dbItem.(models.Room).ToRecord()
	default:
		return nil
	}

	return map[string]string{
		"floor":                rec.Floor,
		"sqft":                 strconv.Itoa(rec.Sqft),
		"professor":            rec.Professor,
		"has_occupancy_sensor": strconv.FormatBool(rec.HasOccupancySensor),
		"sensor_status":        rec.SensorStatus,
	}
}

// loadRoster fetches and parses the roster CSV.
func (a *RoomAdapter) loadRoster(ctx context.Context, client storage.Client, bucket, objectName string) ([]models.RosterRecord, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get roster object: %w", err)
	}
	defer reader.Close()

	records, _, err := models.ParseRoster(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path.Base(objectName), err)
	}

	return records, nil
}
