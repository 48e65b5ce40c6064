package checks

import (
	"context"
	"fmt"
	"time"

	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/feature/telemetry"

	"github.com/minio/minio-go/v7"
)

// OAReport describes the health of the outside-air series.
type OAReport struct {
	Rows      int `json:"rows"`
	RowErrors int `json:"row_errors"`

	// FirstTimestamp is the earliest reading in the series.
	FirstTimestamp time.Time `json:"first_timestamp"`
	// StartsOnExpectedDate is true when the series begins on the
	// configured start date.
	StartsOnExpectedDate bool `json:"starts_on_expected_date"`

	// Gaps are holes in the fixed-interval series.
	Gaps []telemetry.Gap `json:"gaps"`
	// MissingSlots is the total number of absent interval slots.
	MissingSlots int `json:"missing_slots"`
}

// CheckOutsideAir verifies the outside-air series: it must begin on the
// configured start date and have no holes at the configured interval.
func CheckOutsideAir(ctx context.Context, client storage.Client, bucket string, data dataset.Config) (*OAReport, error) {
	start, err := data.OAStartTime()
	if err != nil {
		return nil, err
	}

	object, err := client.GetObject(ctx, bucket, data.OAObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", data.OAObject, err)
	}
	defer object.Close()

	series, err := telemetry.ParseSeries(object)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", data.OAObject, err)
	}

	report := &OAReport{
		Rows:      len(series.Readings),
		RowErrors: len(series.RowErrors),
		Gaps:      []telemetry.Gap{},
	}

	if first, ok := telemetry.CheckStart(series, start); ok {
		report.FirstTimestamp = first
		report.StartsOnExpectedDate = true
	} else {
		report.FirstTimestamp = first
	}

	gaps := telemetry.ScanGaps(series, data.OAInterval())
	if gaps != nil {
		report.Gaps = gaps
	}
	for _, gap := range gaps {
		report.MissingSlots += gap.Missing
	}

	return report, nil
}
