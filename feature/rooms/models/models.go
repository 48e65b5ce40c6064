package models

// RosterRecord represents one row of the curated room metadata CSV.
// The roster is the authoritative source for room metadata; the database
// row is kept in sync from it.
type RosterRecord struct {
	Room               string `json:"room"`
	Floor              string `json:"floor"`
	Sqft               int    `json:"sqft"`
	Occupant           string `json:"occupant"`
	Professor          string `json:"professor"`
	HasOccupancySensor bool   `json:"has_occupancy_sensor"`
	SensorStatus       string `json:"sensor_status"`
}

// RowError records a roster row that could not be parsed.
type RowError struct {
	Line int    `json:"line"`
	Err  string `json:"error"`
}

// RoomSummary is a single row of the room listing.
type RoomSummary struct {
	ID                 string `json:"id"`
	Occupant           string `json:"occupant"`
	Floor              string `json:"floor"`
	Sqft               int    `json:"sqft"`
	HasOccupancySensor bool   `json:"has_occupancy_sensor"`
	SensorStatus       string `json:"sensor_status"`
}

// RoomDetailReport is the full status of a single room across all sources.
type RoomDetailReport struct {
	ID                 string `json:"id"`
	Occupant           string `json:"occupant"`
	Floor              string `json:"floor"`
	Sqft               int    `json:"sqft"`
	Professor          string `json:"professor"`
	HasOccupancySensor bool   `json:"has_occupancy_sensor"`
	SensorStatus       string `json:"sensor_status"`

	// InRoster indicates presence in the curated roster CSV.
	InRoster bool `json:"in_roster"`
	// InDB indicates presence in the rooms database table.
	InDB bool `json:"in_db"`
	// HasDataFile indicates a BAS export exists for the room.
	HasDataFile bool `json:"has_data_file"`
	// HasOccupancyFile indicates the room is part of the occupancy subset.
	HasOccupancyFile bool `json:"has_occupancy_file"`

	// Mismatches lists field discrepancies between the DB row and the roster.
	Mismatches []string `json:"mismatches"`

	// IntegrityStatus is PASS, WARNING, or FAIL.
	IntegrityStatus string `json:"integrity_status"`

	GeneratedAt string `json:"generated_at"`
}
