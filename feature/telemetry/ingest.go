package telemetry

import (
	"context"
	"fmt"

	"bas-manager/core/timeseries"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// writeBatchSize caps the number of points per blocking write.
const writeBatchSize = 5000

// IngestRoom reads one room's BAS export from storage and writes its
// readings to the time-series store.
func (s *Service) IngestRoom(ctx context.Context, room string) (*IngestReport, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("time-series store not configured")
	}

	objectName := s.data.RoomObject(s.data.BASPrefix, room)
	series, err := s.loadSeries(ctx, objectName)
	if err != nil {
		return nil, err
	}

	tags := map[string]string{"room": room, "building": s.data.Building}
	written, err := s.writeSeries(ctx, timeseries.MeasurementBAS, tags, series)
	if err != nil {
		return nil, err
	}

	return &IngestReport{
		Source:    objectName,
		Rows:      len(series.Readings),
		Written:   written,
		RowErrors: len(series.RowErrors),
	}, nil
}

// IngestOutsideAir reads the outside-air series from storage and writes it
// to the time-series store.
func (s *Service) IngestOutsideAir(ctx context.Context) (*IngestReport, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("time-series store not configured")
	}

	series, err := s.loadSeries(ctx, s.data.OAObject)
	if err != nil {
		return nil, err
	}

	tags := map[string]string{"building": s.data.Building}
	written, err := s.writeSeries(ctx, timeseries.MeasurementOutsideAir, tags, series)
	if err != nil {
		return nil, err
	}

	return &IngestReport{
		Source:    s.data.OAObject,
		Rows:      len(series.Readings),
		Written:   written,
		RowErrors: len(series.RowErrors),
	}, nil
}

// IngestAll ingests every room file under the BAS prefix. Objects that do
// not follow the naming convention are skipped with a warning.
func (s *Service) IngestAll(ctx context.Context) ([]*IngestReport, error) {
	if s.writer == nil {
		return nil, fmt.Errorf("time-series store not configured")
	}

	opts := minio.ListObjectsOptions{
		Prefix:    s.data.BASPrefix + "/",
		Recursive: true,
	}

	var reports []*IngestReport
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return reports, fmt.Errorf("failed to list objects: %w", obj.Err)
		}

		room, ok := s.data.RoomFromObjectKey(obj.Key)
		if !ok {
			s.logger.Warn("Skipping object with unexpected name", zap.String("object", obj.Key))
			continue
		}

		report, err := s.IngestRoom(ctx, room)
		if err != nil {
			return reports, fmt.Errorf("failed to ingest room %s: %w", room, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// writeSeries converts readings to points and writes them in batches.
func (s *Service) writeSeries(ctx context.Context, measurement string, tags map[string]string, series *Series) (int, error) {
	points := make([]timeseries.Point, 0, len(series.Readings))
	for _, r := range series.Readings {
		if len(r.Values) == 0 {
			continue
		}
		fields := make(map[string]interface{}, len(r.Values))
		for k, v := range r.Values {
			fields[k] = v
		}
		points = append(points, timeseries.Point{
			Measurement: measurement,
			Tags:        tags,
			Fields:      fields,
			Time:        r.Timestamp,
		})
	}

	written := 0
	for start := 0; start < len(points); start += writeBatchSize {
		end := start + writeBatchSize
		if end > len(points) {
			end = len(points)
		}
		if err := s.writer.WritePoints(ctx, points[start:end]); err != nil {
			return written, err
		}
		written += end - start
	}

	return written, nil
}
