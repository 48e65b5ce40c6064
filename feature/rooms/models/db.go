package models

// Room represents the 'rooms' table.
type Room struct {
	ID                 string `gorm:"column:room;primaryKey"`
	Floor              string `gorm:"column:floor"`
	Sqft               int    `gorm:"column:sqft"`
	Occupant           string `gorm:"column:occupant"`
	Professor          string `gorm:"column:professor"`
	HasOccupancySensor bool   `gorm:"column:has_occupancy_sensor"`
	SensorStatus       string `gorm:"column:sensor_status"`
}

// TableName overrides the table name.
func (Room) TableName() string {
	return "rooms"
}

// ToRecord converts a DB row to its roster equivalent for comparison.
func (r Room) ToRecord() RosterRecord {
	return RosterRecord{
		Room:               r.ID,
		Floor:              r.Floor,
		Sqft:               r.Sqft,
		Occupant:           r.Occupant,
		Professor:          r.Professor,
		HasOccupancySensor: r.HasOccupancySensor,
		SensorStatus:       r.SensorStatus,
	}
}

// RoomFromRecord builds a DB row from a roster record.
func RoomFromRecord(rec RosterRecord) Room {
	return Room{
		ID:                 rec.Room,
		Floor:              rec.Floor,
		Sqft:               rec.Sqft,
		Occupant:           rec.Occupant,
		Professor:          rec.Professor,
		HasOccupancySensor: rec.HasOccupancySensor,
		SensorStatus:       rec.SensorStatus,
	}
}
