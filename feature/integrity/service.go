package integrity

import (
	"context"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	data   dataset.Config
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil when no
// database is configured; the database check will then report an error.
func NewService(client storage.Client, bucket string, data dataset.Config, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		data:   data,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing prefixes and objects.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.data)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.data, s.logger, missing)
}

// CheckNaming returns objects that break the room file naming convention.
func (s *Service) CheckNaming(ctx context.Context) ([]string, error) {
	return checks.CheckNaming(ctx, s.client, s.bucket, s.data)
}

// FixNaming deletes stray objects.
func (s *Service) FixNaming(ctx context.Context, strays []string) error {
	return checks.FixNaming(ctx, s.client, s.bucket, strays)
}

// CheckOutsideAir verifies the outside-air series start date and continuity.
func (s *Service) CheckOutsideAir(ctx context.Context) (*checks.OAReport, error) {
	return checks.CheckOutsideAir(ctx, s.client, s.bucket, s.data)
}

// CheckOccupancy verifies the occupancy subset consistency.
func (s *Service) CheckOccupancy(ctx context.Context) (*checks.OccupancyReport, error) {
	return checks.CheckOccupancy(ctx, s.client, s.bucket, s.data)
}

// CheckDatabase verifies the rooms table schema.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db)
}
