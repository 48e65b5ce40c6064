package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "bas-data", cfg.Storage.Bucket)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:8086", cfg.Influx.URL)
	assert.Equal(t, "combined_milas_hall", cfg.Data.BASPrefix)
	assert.Equal(t, "occupancy_data", cfg.Data.OccupancyPrefix)
	assert.Equal(t, "oa_data.csv", cfg.Data.OAObject)
	assert.Equal(t, "RoomStatsCopy.csv", cfg.Data.RosterObject)
	assert.Equal(t, "Flo2.3-", cfg.Data.FilePrefix)
	assert.Equal(t, "2021-03-11", cfg.Data.OAStart)
	assert.Equal(t, 15, cfg.Data.OAIntervalMinutes)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_BAS_PREFIX", "other_hall")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "other_hall", cfg.Data.BASPrefix)
}
