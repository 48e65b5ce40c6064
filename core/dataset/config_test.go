package dataset_test

import (
	"testing"
	"time"

	"bas-manager/core/dataset"

	"github.com/stretchr/testify/assert"
)

func TestConfig_RoomObject(t *testing.T) {
	c := dataset.Config{FilePrefix: "Flo2.3-"}
	assert.Equal(t, "combined_milas_hall/Flo2.3-A3-70.csv", c.RoomObject("combined_milas_hall", "A3-70"))
}

func TestConfig_RoomFromObjectKey(t *testing.T) {
	c := dataset.Config{FilePrefix: "Flo2.3-"}

	tests := []struct {
		name string
		key  string
		room string
		ok   bool
	}{
		{"Standard", "combined_milas_hall/Flo2.3-A3-70.csv", "A3-70", true},
		{"Occupancy prefix", "occupancy_data/Flo2.3-B1-12.csv", "B1-12", true},
		{"Bare file name", "Flo2.3-A3-70.csv", "A3-70", true},
		{"Wrong extension", "combined_milas_hall/Flo2.3-A3-70.txt", "", false},
		{"Missing file prefix", "combined_milas_hall/A3-70.csv", "", false},
		{"Empty room", "combined_milas_hall/Flo2.3-.csv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, ok := c.RoomFromObjectKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.room, room)
		})
	}
}

func TestConfig_OAInterval(t *testing.T) {
	assert.Equal(t, 15*time.Minute, dataset.Config{}.OAInterval())
	assert.Equal(t, 5*time.Minute, dataset.Config{OAIntervalMinutes: 5}.OAInterval())
}

func TestConfig_OAStartTime(t *testing.T) {
	c := dataset.Config{OAStart: "2021-03-11"}
	start, err := c.OAStartTime()
	assert.NoError(t, err)
	assert.Equal(t, 2021, start.Year())
	assert.Equal(t, time.March, start.Month())

	_, err = dataset.Config{OAStart: "not-a-date"}.OAStartTime()
	assert.Error(t, err)
}
