package rooms

import (
	"context"
	"fmt"
	"time"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms/models"
	roomsreconcile "bas-manager/feature/rooms/reconcile"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CheckRoom builds a detail report for one room by consulting the roster,
// the database, and both storage prefixes.
//
// The identifier may be a room ID or an occupant name. The roster is
// consulted first so the storage probes use the resolved room ID; only an
// unrostered identifier is probed as-is.
func CheckRoom(ctx context.Context, client storage.Client, bucket string, data dataset.Config, db *gorm.DB, identifier string) (*models.RoomDetailReport, error) {
	rosterRec, err := lookupRoster(ctx, client, bucket, data.RosterObject, identifier)
	if err != nil {
		return nil, fmt.Errorf("roster lookup failed: %w", err)
	}

	roomID := identifier
	if rosterRec != nil {
		roomID = rosterRec.Room
	}

	var (
		dbRoom  *models.Room
		hasData bool
		hasOcc  bool
	)

	g, gctx := errgroup.WithContext(ctx)

	if db != nil {
		g.Go(func() error {
			room, err := GetDBRoom(db.WithContext(gctx), identifier)
			if err != nil {
				return fmt.Errorf("database lookup failed: %w", err)
			}
			dbRoom = room
			return nil
		})
	}

	g.Go(func() error {
		exists, err := objectExists(gctx, client, bucket, data.RoomObject(data.BASPrefix, roomID))
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		hasData = exists
		return nil
	})

	g.Go(func() error {
		exists, err := objectExists(gctx, client, bucket, data.RoomObject(data.OccupancyPrefix, roomID))
		if err != nil {
			return fmt.Errorf("occupancy check failed: %w", err)
		}
		hasOcc = exists
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.RoomDetailReport{
		ID:               roomID,
		InRoster:         rosterRec != nil,
		InDB:             dbRoom != nil,
		HasDataFile:      hasData,
		HasOccupancyFile: hasOcc,
		Mismatches:       []string{},
		GeneratedAt:      time.Now().Format(time.RFC3339),
	}

	// Roster metadata takes precedence over the DB row.
	switch {
	case rosterRec != nil:
		report.ID = rosterRec.Room
		report.Occupant = rosterRec.Occupant
		report.Floor = rosterRec.Floor
		report.Sqft = rosterRec.Sqft
		report.Professor = rosterRec.Professor
		report.HasOccupancySensor = rosterRec.HasOccupancySensor
		report.SensorStatus = rosterRec.SensorStatus
	case dbRoom != nil:
		report.ID = dbRoom.ID
		report.Occupant = dbRoom.Occupant
		report.Floor = dbRoom.Floor
		report.Sqft = dbRoom.Sqft
		report.Professor = dbRoom.Professor
		report.HasOccupancySensor = dbRoom.HasOccupancySensor
		report.SensorStatus = dbRoom.SensorStatus
	}

	if rosterRec != nil && dbRoom != nil {
		adapter := roomsreconcile.NewAdapter(data)
		report.Mismatches = adapter.CompareFields(*dbRoom, *rosterRec)
	}

	report.IntegrityStatus = integrityStatus(report, db != nil)

	return report, nil
}

// integrityStatus grades a detail report.
// FAIL: the room is unknown to the roster or has no data file.
// WARNING: field mismatches, a missing DB row, or a sensor listed as working
// without an occupancy-subset file.
func integrityStatus(report *models.RoomDetailReport, dbConfigured bool) string {
	if !report.InRoster || !report.HasDataFile {
		return "FAIL"
	}
	if len(report.Mismatches) > 0 {
		return "WARNING"
	}
	if dbConfigured && !report.InDB {
		return "WARNING"
	}
	if report.HasOccupancySensor && !report.HasOccupancyFile {
		return "WARNING"
	}
	return "PASS"
}

// lookupRoster finds a roster entry by room ID or occupant name.
func lookupRoster(ctx context.Context, client storage.Client, bucket, objectName, identifier string) (*models.RosterRecord, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	records, _, err := models.ParseRoster(reader)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.Room == identifier || (rec.Occupant != "" && rec.Occupant == identifier) {
			return &rec, nil
		}
	}

	return nil, nil
}

// objectExists checks for an exact object key with a bounded listing.
func objectExists(ctx context.Context, client storage.Client, bucket, objectKey string) (bool, error) {
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
