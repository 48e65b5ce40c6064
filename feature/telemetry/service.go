package telemetry

import (
	"context"
	"fmt"
	"time"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/core/timeseries"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service reads sensor exports from object storage and serves them as
// parsed time series.
type Service struct {
	client storage.Client
	bucket string
	data   dataset.Config
	writer timeseries.Writer
	logger *zap.Logger
}

// SeriesQuery narrows a room series request.
type SeriesQuery struct {
	// OccupiedOnly keeps only rows where the setpoints indicate an
	// occupied schedule.
	OccupiedOnly bool
	// MergeOutsideAir joins outside-air columns onto the room series.
	MergeOutsideAir bool
	// From and To bound the series when non-zero.
	From time.Time
	To   time.Time
}

// NewService builds a telemetry service. The writer may be nil when no
// time-series store is configured; ingest operations will then fail.
func NewService(client storage.Client, bucket string, data dataset.Config, writer timeseries.Writer, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		data:   data,
		writer: writer,
		logger: logger,
	}
}

// RoomSeries loads a room's BAS series, applying the query's filters.
func (s *Service) RoomSeries(ctx context.Context, room string, query SeriesQuery) (*Series, error) {
	objectName := s.data.RoomObject(s.data.BASPrefix, room)
	series, err := s.loadSeries(ctx, objectName)
	if err != nil {
		return nil, err
	}

	if query.MergeOutsideAir {
		oa, err := s.OutsideAir(ctx)
		if err != nil {
			return nil, err
		}
		series = MergeOutsideAir(series, oa)
	}

	if query.OccupiedOnly {
		filtered := FilterOccupied(series.Readings)
		if filtered == nil {
			return nil, fmt.Errorf("room %s has no setpoint columns", room)
		}
		series = &Series{Columns: series.Columns, Readings: filtered, RowErrors: series.RowErrors}
	}

	if !query.From.IsZero() || !query.To.IsZero() {
		series = clampSeries(series, query.From, query.To)
	}

	return series, nil
}

// OccupancySeries loads a room's file from the occupancy subset.
func (s *Service) OccupancySeries(ctx context.Context, room string) (*Series, error) {
	objectName := s.data.RoomObject(s.data.OccupancyPrefix, room)
	return s.loadSeries(ctx, objectName)
}

// OutsideAir loads the building-wide outside-air series.
func (s *Service) OutsideAir(ctx context.Context) (*Series, error) {
	return s.loadSeries(ctx, s.data.OAObject)
}

func (s *Service) loadSeries(ctx context.Context, objectName string) (*Series, error) {
	object, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer object.Close()

	series, err := ParseSeries(object)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", objectName, err)
	}

	if len(series.RowErrors) > 0 {
		s.logger.Warn("Skipped malformed rows",
			zap.String("object", objectName),
			zap.Int("count", len(series.RowErrors)))
	}

	return series, nil
}

func clampSeries(series *Series, from, to time.Time) *Series {
	out := &Series{Columns: series.Columns, RowErrors: series.RowErrors}
	for _, r := range series.Readings {
		if !from.IsZero() && r.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && r.Timestamp.After(to) {
			continue
		}
		out.Readings = append(out.Readings, r)
	}
	return out
}
