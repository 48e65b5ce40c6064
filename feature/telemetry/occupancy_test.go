package telemetry_test

import (
	"testing"
	"time"

	"bas-manager/feature/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterOccupied(t *testing.T) {
	base := time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC)

	readings := []telemetry.Reading{
		// Unoccupied: cooling setpoint at the max (78)
		reading(base, map[string]float64{"RmTmpCspt": 78, "RmTmpHpst": 68}),
		// Occupied: both setpoints strictly inside the extremes
		reading(base.Add(15*time.Minute), map[string]float64{"RmTmpCspt": 74, "RmTmpHpst": 68}),
		// Unoccupied: heating setpoint at the min (62)
		reading(base.Add(30*time.Minute), map[string]float64{"RmTmpCspt": 74, "RmTmpHpst": 62}),
		// Missing a setpoint: dropped
		reading(base.Add(45*time.Minute), map[string]float64{"RmTmpCspt": 74}),
	}

	occupied := telemetry.FilterOccupied(readings)
	require.Len(t, occupied, 1)
	assert.Equal(t, base.Add(15*time.Minute), occupied[0].Timestamp)
}

func TestFilterOccupiedNoSetpointColumns(t *testing.T) {
	readings := []telemetry.Reading{
		reading(time.Now(), map[string]float64{"RmTmp": 70.5}),
	}

	assert.Nil(t, telemetry.FilterOccupied(readings))
}

func TestFilterOccupiedConstantSetpoints(t *testing.T) {
	base := time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC)

	// Setpoints never move, so every row sits at both extremes.
	readings := []telemetry.Reading{
		reading(base, map[string]float64{"RmTmpCspt": 74, "RmTmpHpst": 68}),
		reading(base.Add(15*time.Minute), map[string]float64{"RmTmpCspt": 74, "RmTmpHpst": 68}),
	}

	assert.Empty(t, telemetry.FilterOccupied(readings))
}
