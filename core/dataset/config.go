package dataset

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Config describes the layout of the BAS data bucket.
// The naming conventions mirror the export layout produced by the building
// automation system: one CSV per room under the BAS prefix, a curated subset
// under the occupancy prefix, plus the outside-air series and the manually
// maintained room roster.
type Config struct {
	// Building is the building identifier the dataset belongs to.
	Building string `mapstructure:"building" default:"milas_hall"`
	// BASPrefix is the bucket prefix holding one CSV per room.
	BASPrefix string `mapstructure:"bas_prefix" default:"combined_milas_hall"`
	// OccupancyPrefix is the bucket prefix holding rooms with working occupancy sensors.
	OccupancyPrefix string `mapstructure:"occupancy_prefix" default:"occupancy_data"`
	// OAObject is the object name of the outside-air series.
	OAObject string `mapstructure:"oa_object" default:"oa_data.csv"`
	// RosterObject is the object name of the curated room metadata table.
	RosterObject string `mapstructure:"roster_object" default:"RoomStatsCopy.csv"`
	// FilePrefix is the prefix of every per-room CSV file name.
	FilePrefix string `mapstructure:"file_prefix" default:"Flo2.3-"`
	// OAStart is the first calendar date of the outside-air series (YYYY-MM-DD).
	OAStart string `mapstructure:"oa_start" default:"2021-03-11"`
	// OAIntervalMinutes is the sampling interval of the outside-air series.
	OAIntervalMinutes int `mapstructure:"oa_interval_minutes" default:"15"`
}

// OAInterval returns the outside-air sampling interval as a duration.
func (c Config) OAInterval() time.Duration {
	if c.OAIntervalMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.OAIntervalMinutes) * time.Minute
}

// OAStartTime parses the configured series start date.
func (c Config) OAStartTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.OAStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid oa_start %q: %w", c.OAStart, err)
	}
	return t, nil
}

// RoomObject returns the object key of a room's BAS file under the given prefix.
// Example: RoomObject("combined_milas_hall", "A3-70") -> "combined_milas_hall/Flo2.3-A3-70.csv".
func (c Config) RoomObject(prefix, room string) string {
	return path.Join(prefix, c.FilePrefix+room+".csv")
}

// RoomFromObjectKey extracts the room ID from a per-room object key.
// ok is false when the key does not follow the naming convention.
func (c Config) RoomFromObjectKey(key string) (room string, ok bool) {
	base := path.Base(key)
	if !strings.HasSuffix(base, ".csv") {
		return "", false
	}
	if !strings.HasPrefix(base, c.FilePrefix) {
		return "", false
	}
	room = strings.TrimSuffix(strings.TrimPrefix(base, c.FilePrefix), ".csv")
	if room == "" {
		return "", false
	}
	return room, true
}
