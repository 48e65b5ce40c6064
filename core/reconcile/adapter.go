package reconcile

import (
	"context"

	"bas-manager/core/storage"

	"gorm.io/gorm"
)

// Adapter defines the interface for model-specific reconciliation logic.
// The rooms adapter is the primary implementation; the interface keeps the
// engine reusable for future per-building datasets.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "rooms").
	Name() string

	// LoadDBIndex loads all relevant DB rows and returns them indexed by room ID.
	// Implementations should use batch queries to load minimal columns efficiently.
	LoadDBIndex(ctx context.Context, db *gorm.DB) (map[string]DBItem, error)

	// LoadRosterIndex loads entries from the curated roster CSV in storage
	// and returns them indexed by room ID.
	LoadRosterIndex(ctx context.Context, client storage.Client, bucket, objectName string) (map[string]RosterItem, error)

	// LoadStorageSet lists all storage objects under the given prefix, filtered by
	// extension, and returns a set of room IDs. Implementations should use
	// paginated listing and avoid per-item HEAD calls.
	LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix, extension string) (map[string]struct{}, error)

	// ExtractDBKey returns the room ID from a DB item.
	ExtractDBKey(item DBItem) string

	// ExtractRosterKey returns the room ID from a roster item.
	ExtractRosterKey(item RosterItem) string

	// ExtractStorageKey parses a storage object key and returns the room ID.
	// If the object key doesn't match the expected naming convention, ok is false.
	// Example: "combined_milas_hall/Flo2.3-A3-70.csv" -> ("A3-70", true).
	ExtractStorageKey(objectKey, extension string) (key string, ok bool)

	// ResolveName returns the display name for a room given available DB and/or
	// roster items. Either item may be nil if not present in that source.
	ResolveName(dbItem DBItem, rosterItem RosterItem) string

	// CompareFields compares mapped fields between DB and roster items and returns
	// a list of mismatch descriptions. Each string should include the field label
	// and both values (e.g., "sqft: roster=410 db=380").
	// Both items are guaranteed to be non-nil when this is called.
	CompareFields(dbItem DBItem, rosterItem RosterItem) []string

	// QueryDB performs a targeted database lookup based on the query parameters.
	// Returns nil if no match is found.
	QueryDB(ctx context.Context, db *gorm.DB, query Query) (DBItem, error)

	// QueryRoster performs a targeted roster lookup based on the query parameters.
	// Returns nil if no match is found. The roster CSV is small enough that
	// implementations may parse the whole object; cached indices are preferred
	// for repeated queries.
	QueryRoster(ctx context.Context, client storage.Client, bucket, objectName string, query Query) (RosterItem, error)

	// CheckStorage checks if a specific room's data file exists in storage.
	CheckStorage(ctx context.Context, client storage.Client, bucket, prefix, extension string, key string) (bool, error)

	// GetMetadata returns room-specific metadata (e.g., floor, sensor status).
	// This data is included in the Result.
	GetMetadata(dbItem DBItem, rosterItem RosterItem) map[string]string
}

// Mutator is implemented by adapters that support purge and sync actions.
type Mutator interface {
	// DeleteDB removes a room row from the database.
	DeleteDB(ctx context.Context, key string) error

	// DeleteRoster removes a room from the roster CSV, rewriting the object.
	DeleteRoster(ctx context.Context, key string) error

	// DeleteStorage removes a room's data file from storage.
	DeleteStorage(ctx context.Context, key string) error

	// SyncDBFromRoster updates the DB row for a room from its roster entry.
	SyncDBFromRoster(ctx context.Context, key string, item RosterItem) error
}
