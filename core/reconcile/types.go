package reconcile

import "time"

// Result represents the reconciliation output for a single room.
// It contains presence flags for each source and any detected mismatches.
type Result struct {
	// ID is the room identifier (e.g. "A3-70").
	ID string `json:"id"`

	// Name is the display name of the room (occupant or room ID).
	Name string `json:"name"`

	// DBPresent indicates whether the room exists in the database.
	DBPresent bool `json:"db_present"`

	// StoragePresent indicates whether the room's BAS file exists in storage.
	StoragePresent bool `json:"storage_present"`

	// RosterPresent indicates whether the room is listed in the curated roster.
	RosterPresent bool `json:"roster_present"`

	// Mismatch contains descriptions of field mismatches between DB and roster.
	// Each string describes a specific mismatch, e.g., "sqft: roster=410 db=380".
	Mismatch []string `json:"mismatch"`

	// Metadata contains room-specific data (e.g., floor, sensor status).
	Metadata map[string]string `json:"metadata"`
}

// Query represents a search query for targeted reconciliation.
// The adapter decides how to translate query fields into lookups.
type Query struct {
	// ID is the room ID to search for.
	ID string

	// Occupant is the occupant name to search for.
	Occupant string
}

// Spec defines the configuration for a reconciliation operation.
// It bundles the adapter, cache settings, and data source parameters.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// StoragePrefix is the prefix under which per-room files live.
	StoragePrefix string

	// StorageExtension is the file extension to filter storage objects.
	StorageExtension string

	// RosterObjectName is the object name of the curated roster CSV.
	// Example: "RoomStatsCopy.csv"
	RosterObjectName string
}

// CacheKey returns a unique key for caching based on spec parameters.
// This ensures different adapters/configs don't share the same cache.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.StoragePrefix + "|" + s.StorageExtension + "|" + s.RosterObjectName
}

// DBItem represents a database entity with arbitrary fields.
// Adapters define the concrete type and provide a way to extract this.
type DBItem any

// RosterItem represents a curated roster entry with arbitrary fields.
// Adapters define the concrete type and provide a way to extract this.
type RosterItem any

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDeleteDB deletes a room row from the database.
	ActionDeleteDB ActionType = "delete_db"
	// ActionDeleteRoster deletes a room from the roster CSV.
	ActionDeleteRoster ActionType = "delete_roster"
	// ActionDeleteStorage deletes a room's data file from storage.
	ActionDeleteStorage ActionType = "delete_storage"
	// ActionSyncDB syncs database fields from the roster.
	ActionSyncDB ActionType = "sync_db"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the room identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// RosterItem stores the roster source for sync actions.
	// Only populated for ActionSyncDB.
	RosterItem RosterItem `json:"-"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	// Results contains per-room reconciliation data.
	Results []Result `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalRooms is the total number of unique rooms.
	TotalRooms int `json:"total_rooms"`

	// MissingRoster counts rooms missing in the roster.
	MissingRoster int `json:"missing_roster"`

	// MissingStorage counts rooms missing a BAS data file.
	MissingStorage int `json:"missing_storage"`

	// MissingDB counts rooms missing in the database.
	MissingDB int `json:"missing_db"`

	// Mismatches counts rooms with field discrepancies.
	Mismatches int `json:"mismatches"`

	// PurgeActions counts planned purge (delete) actions.
	PurgeActions int `json:"purge_actions"`

	// SyncActions counts planned sync (update) actions.
	SyncActions int `json:"sync_actions"`
}

// Options controls reconcile behavior for purge/sync operations.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge enables deletion of rooms missing in any store.
	DoPurge bool

	// DoSync enables syncing of mismatched fields from the roster to DB.
	DoSync bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
