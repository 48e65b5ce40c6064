package rooms

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bas-manager/core/dataset"
	"bas-manager/core/reconcile"
	"bas-manager/core/storage"
	"bas-manager/feature/rooms/models"
	roomsreconcile "bas-manager/feature/rooms/reconcile"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles room roster operations.
type Service struct {
	client storage.Client
	bucket string
	data   dataset.Config
	logger *zap.Logger
	db     *gorm.DB

	adapter *roomsreconcile.RoomAdapter
}

// NewService creates a new rooms service.
func NewService(client storage.Client, bucket string, data dataset.Config, logger *zap.Logger, db *gorm.DB) *Service {
	adapter := roomsreconcile.NewAdapter(data)
	adapter.SetMutationContext(db, client, bucket)

	return &Service{
		client:  client,
		bucket:  bucket,
		data:    data,
		logger:  logger,
		db:      db,
		adapter: adapter,
	}
}

// ListRooms returns a summary for every room in the roster, sorted by ID.
func (s *Service) ListRooms(ctx context.Context) ([]models.RoomSummary, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.data.RosterObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer reader.Close()

	records, rowErrors, err := models.ParseRoster(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if len(rowErrors) > 0 {
		s.logger.Warn("Skipped malformed roster rows", zap.Int("count", len(rowErrors)))
	}

	summaries := make([]models.RoomSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, models.RoomSummary{
			ID:                 rec.Room,
			Occupant:           rec.Occupant,
			Floor:              rec.Floor,
			Sqft:               rec.Sqft,
			HasOccupancySensor: rec.HasOccupancySensor,
			SensorStatus:       rec.SensorStatus,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})

	return summaries, nil
}

// GetRoomDetail returns detailed integrity info for a single room.
func (s *Service) GetRoomDetail(ctx context.Context, identifier string) (*models.RoomDetailReport, error) {
	return CheckRoom(ctx, s.client, s.bucket, s.data, s.db, identifier)
}

// ReconcileSpec builds the reconcile spec for rooms.
func (s *Service) ReconcileSpec(cacheTTL time.Duration) *reconcile.Spec {
	return &reconcile.Spec{
		Adapter:          s.adapter,
		CacheTTL:         cacheTTL,
		StoragePrefix:    s.data.BASPrefix,
		StorageExtension: ".csv",
		RosterObjectName: s.data.RosterObject,
	}
}

// Reconcile plans and optionally applies purge/sync actions across the
// roster, database, and storage.
func (s *Service) Reconcile(ctx context.Context, opts reconcile.Options) (*reconcile.Plan, int, error) {
	spec := s.ReconcileSpec(0)

	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, s.db, s.client, s.bucket, opts)
	if err != nil {
		return plan, executed, err
	}

	if executed > 0 {
		s.logger.Info("Reconcile mutations applied",
			zap.Int("executed", executed),
			zap.Int("purge_actions", plan.Summary.PurgeActions),
			zap.Int("sync_actions", plan.Summary.SyncActions))
		reconcile.InvalidateCache(spec)
	}

	return plan, executed, nil
}
