package timeseries

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names used for ingested readings.
const (
	MeasurementBAS        = "bas"
	MeasurementOutsideAir = "outside_air"
)

// Point is a single reading ready to be written.
type Point struct {
	// Measurement is the target measurement (bas or outside_air).
	Measurement string
	// Tags identify the series (e.g. room ID).
	Tags map[string]string
	// Fields holds the numeric readings keyed by column name.
	Fields map[string]interface{}
	// Time is the reading timestamp.
	Time time.Time
}

// Writer writes reading points to the time-series store.
type Writer interface {
	// WritePoints writes a batch of points to the configured bucket.
	WritePoints(ctx context.Context, points []Point) error
	// EnsureBucket creates the configured bucket if it does not exist.
	EnsureBucket(ctx context.Context) error
	// Close releases the underlying client resources.
	Close()
}

type influxWriter struct {
	client influxdb2.Client
	cfg    Config
}

// NewWriter creates an InfluxDB-backed Writer and verifies connectivity.
func NewWriter(ctx context.Context, cfg Config) (Writer, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	health, err := client.Health(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to influxdb: %w", err)
	}
	if health.Status != "pass" {
		client.Close()
		msg := ""
		if health.Message != nil {
			msg = *health.Message
		}
		return nil, fmt.Errorf("influxdb health check failed: %s", msg)
	}

	return &influxWriter{client: client, cfg: cfg}, nil
}

// WritePoints writes a batch of points using the blocking write API.
func (w *influxWriter) WritePoints(ctx context.Context, points []Point) error {
	writeAPI := w.client.WriteAPIBlocking(w.cfg.Org, w.cfg.Bucket)

	batch := make([]*write.Point, 0, len(points))
	for _, p := range points {
		batch = append(batch, influxdb2.NewPoint(p.Measurement, p.Tags, p.Fields, p.Time))
	}

	if err := writeAPI.WritePoint(ctx, batch...); err != nil {
		return fmt.Errorf("failed to write points: %w", err)
	}
	return nil
}

// EnsureBucket creates the configured bucket if it does not exist.
func (w *influxWriter) EnsureBucket(ctx context.Context) error {
	bucketsAPI := w.client.BucketsAPI()

	if _, err := bucketsAPI.FindBucketByName(ctx, w.cfg.Bucket); err == nil {
		return nil
	}

	org, err := w.client.OrganizationsAPI().FindOrganizationByName(ctx, w.cfg.Org)
	if err != nil {
		return fmt.Errorf("failed to find organization %s: %w", w.cfg.Org, err)
	}

	if _, err := bucketsAPI.CreateBucketWithName(ctx, org, w.cfg.Bucket); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", w.cfg.Bucket, err)
	}
	return nil
}

// Close releases the underlying client resources.
func (w *influxWriter) Close() {
	w.client.Close()
}
