package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms/models"

	"github.com/minio/minio-go/v7"
)

// OccupancyReport describes problems with the occupancy subset.
type OccupancyReport struct {
	// RoomsChecked is the number of rooms in the occupancy subset.
	RoomsChecked int `json:"rooms_checked"`
	// NotInBAS lists occupancy rooms without a full BAS export.
	NotInBAS []string `json:"not_in_bas"`
	// NotRostered lists occupancy rooms absent from the roster.
	NotRostered []string `json:"not_rostered"`
	// SensorNotListed lists occupancy rooms whose roster entry does not
	// mark them as having a working occupancy sensor.
	SensorNotListed []string `json:"sensor_not_listed"`
}

// OK returns true when the subset is consistent.
func (r *OccupancyReport) OK() bool {
	return len(r.NotInBAS) == 0 && len(r.NotRostered) == 0 && len(r.SensorNotListed) == 0
}

// CheckOccupancy verifies that the occupancy subset is consistent with the
// full BAS export set and the roster: every occupancy room must have a full
// export, a roster entry, and a sensor listed in that entry.
func CheckOccupancy(ctx context.Context, client storage.Client, bucket string, data dataset.Config) (*OccupancyReport, error) {
	basSet, err := listRoomSet(ctx, client, bucket, data, data.BASPrefix)
	if err != nil {
		return nil, err
	}

	occSet, err := listRoomSet(ctx, client, bucket, data, data.OccupancyPrefix)
	if err != nil {
		return nil, err
	}

	roster, err := loadRosterIndex(ctx, client, bucket, data)
	if err != nil {
		return nil, err
	}

	report := &OccupancyReport{
		RoomsChecked:    len(occSet),
		NotInBAS:        []string{},
		NotRostered:     []string{},
		SensorNotListed: []string{},
	}

	for room := range occSet {
		if _, ok := basSet[room]; !ok {
			report.NotInBAS = append(report.NotInBAS, room)
		}

		rec, ok := roster[room]
		if !ok {
			report.NotRostered = append(report.NotRostered, room)
			continue
		}
		if !rec.HasOccupancySensor {
			report.SensorNotListed = append(report.SensorNotListed, room)
		}
	}

	sort.Strings(report.NotInBAS)
	sort.Strings(report.NotRostered)
	sort.Strings(report.SensorNotListed)

	return report, nil
}

func listRoomSet(ctx context.Context, client storage.Client, bucket string, data dataset.Config, prefix string) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	opts := minio.ListObjectsOptions{
		Prefix:    strings.TrimSuffix(prefix, "/") + "/",
		Recursive: true,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if room, ok := data.RoomFromObjectKey(obj.Key); ok {
			set[room] = struct{}{}
		}
	}

	return set, nil
}

func loadRosterIndex(ctx context.Context, client storage.Client, bucket string, data dataset.Config) (map[string]models.RosterRecord, error) {
	reader, err := client.GetObject(ctx, bucket, data.RosterObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer reader.Close()

	records, _, err := models.ParseRoster(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	index := make(map[string]models.RosterRecord, len(records))
	for _, rec := range records {
		index[rec.Room] = rec
	}

	return index, nil
}
