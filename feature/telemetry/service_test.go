package telemetry_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"bas-manager/core/dataset"
	storagemocks "bas-manager/core/storage/mocks"
	"bas-manager/core/timeseries"
	tsmocks "bas-manager/core/timeseries/mocks"
	"bas-manager/feature/telemetry"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "bas-data"

func testDataConfig() dataset.Config {
	return dataset.Config{
		Building:          "milas_hall",
		BASPrefix:         "combined_milas_hall",
		OccupancyPrefix:   "occupancy_data",
		OAObject:          "oa_data.csv",
		RosterObject:      "RoomStatsCopy.csv",
		FilePrefix:        "Flo2.3-",
		OAStart:           "2021-03-11",
		OAIntervalMinutes: 15,
	}
}

func csvObject(content string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(content)))
}

func objectChannel(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func TestRoomSeries(t *testing.T) {
	roomCSV := strings.Join([]string{
		"timestamp,RmTmp,RmTmpCspt,RmTmpHpst",
		"2021-03-11 00:00:00,70.5,78.0,68.0",
		"2021-03-11 00:15:00,70.6,74.0,68.0",
		"2021-03-11 00:30:00,70.7,74.0,62.0",
	}, "\n")
	oaCSV := strings.Join([]string{
		"timestamp,OaTmp,OaHum",
		"2021-03-11 00:00:00,41.2,80.0",
		"2021-03-11 00:15:00,41.5,79.5",
	}, "\n")

	mockClient := new(storagemocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "combined_milas_hall/Flo2.3-A3-70.csv", mock.Anything).
		Return(csvObject(roomCSV), nil)
	mockClient.On("GetObject", mock.Anything, testBucket, "oa_data.csv", mock.Anything).
		Return(csvObject(oaCSV), nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), nil, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	series, err := svc.RoomSeries(ctx, "A3-70", telemetry.SeriesQuery{
		OccupiedOnly:    true,
		MergeOutsideAir: true,
	})
	require.NoError(t, err)

	// Only the 00:15 row survives the occupancy filter; it carries merged OA values.
	require.Len(t, series.Readings, 1)
	r := series.Readings[0]
	assert.Equal(t, time.Date(2021, 3, 11, 0, 15, 0, 0, time.UTC), r.Timestamp)
	assert.Equal(t, 70.6, r.Values["RmTmp"])
	assert.Equal(t, 41.5, r.Values["OaTmp"])
	assert.Equal(t, 79.5, r.Values["OaHum"])

	mockClient.AssertExpectations(t)
}

func TestRoomSeriesTimeRange(t *testing.T) {
	roomCSV := strings.Join([]string{
		"timestamp,RmTmp",
		"2021-03-11 00:00:00,70.5",
		"2021-03-11 00:15:00,70.6",
		"2021-03-11 00:30:00,70.7",
	}, "\n")

	mockClient := new(storagemocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "combined_milas_hall/Flo2.3-A3-70.csv", mock.Anything).
		Return(csvObject(roomCSV), nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), nil, zap.NewNop())

	series, err := svc.RoomSeries(context.Background(), "A3-70", telemetry.SeriesQuery{
		From: time.Date(2021, 3, 11, 0, 10, 0, 0, time.UTC),
		To:   time.Date(2021, 3, 11, 0, 20, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, series.Readings, 1)
	assert.Equal(t, 70.6, series.Readings[0].Values["RmTmp"])
}

func TestOccupancySeries(t *testing.T) {
	occCSV := strings.Join([]string{
		"timestamp,RmTmp,Occ",
		"2021-03-11 00:00:00,70.5,1",
		"2021-03-11 00:15:00,70.6,0",
	}, "\n")

	mockClient := new(storagemocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "occupancy_data/Flo2.3-A3-70.csv", mock.Anything).
		Return(csvObject(occCSV), nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), nil, zap.NewNop())

	series, err := svc.OccupancySeries(context.Background(), "A3-70")
	require.NoError(t, err)
	require.Len(t, series.Readings, 2)
	assert.Equal(t, 1.0, series.Readings[0].Values["Occ"])
	assert.Equal(t, 0.0, series.Readings[1].Values["Occ"])

	mockClient.AssertExpectations(t)
}

func TestIngestRoom(t *testing.T) {
	roomCSV := strings.Join([]string{
		"timestamp,RmTmp,RmCO2",
		"2021-03-11 00:00:00,70.5,412",
		"2021-03-11 00:15:00,70.6,",
		"bad-timestamp,70.7,401",
	}, "\n")

	mockClient := new(storagemocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "combined_milas_hall/Flo2.3-A3-70.csv", mock.Anything).
		Return(csvObject(roomCSV), nil)

	mockWriter := new(tsmocks.Writer)
	var written []timeseries.Point
	mockWriter.On("WritePoints", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).([]timeseries.Point)...)
		}).
		Return(nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), mockWriter, zap.NewNop())

	report, err := svc.IngestRoom(context.Background(), "A3-70")
	require.NoError(t, err)

	assert.Equal(t, "combined_milas_hall/Flo2.3-A3-70.csv", report.Source)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, 1, report.RowErrors)

	require.Len(t, written, 2)
	assert.Equal(t, timeseries.MeasurementBAS, written[0].Measurement)
	assert.Equal(t, "A3-70", written[0].Tags["room"])
	assert.Equal(t, "milas_hall", written[0].Tags["building"])
	assert.Equal(t, 70.5, written[0].Fields["RmTmp"])

	mockWriter.AssertExpectations(t)
}

func TestIngestRoomNoWriter(t *testing.T) {
	svc := telemetry.NewService(new(storagemocks.Client), testBucket, testDataConfig(), nil, zap.NewNop())

	_, err := svc.IngestRoom(context.Background(), "A3-70")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestIngestAll(t *testing.T) {
	roomCSV := "timestamp,RmTmp\n2021-03-11 00:00:00,70.5\n"

	mockClient := new(storagemocks.Client)
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.Anything).
		Return(objectChannel(
			"combined_milas_hall/Flo2.3-A3-70.csv",
			"combined_milas_hall/notes.txt",
			"combined_milas_hall/Flo2.3-A3-71.csv",
		))
	mockClient.On("GetObject", mock.Anything, testBucket, "combined_milas_hall/Flo2.3-A3-70.csv", mock.Anything).
		Return(csvObject(roomCSV), nil)
	mockClient.On("GetObject", mock.Anything, testBucket, "combined_milas_hall/Flo2.3-A3-71.csv", mock.Anything).
		Return(csvObject(roomCSV), nil)

	mockWriter := new(tsmocks.Writer)
	mockWriter.On("WritePoints", mock.Anything, mock.Anything).Return(nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), mockWriter, zap.NewNop())

	reports, err := svc.IngestAll(context.Background())
	require.NoError(t, err)

	// The stray notes.txt is skipped.
	require.Len(t, reports, 2)
	assert.Equal(t, "combined_milas_hall/Flo2.3-A3-70.csv", reports[0].Source)
	assert.Equal(t, "combined_milas_hall/Flo2.3-A3-71.csv", reports[1].Source)

	mockClient.AssertExpectations(t)
	mockWriter.AssertExpectations(t)
}

func TestIngestOutsideAir(t *testing.T) {
	oaCSV := strings.Join([]string{
		"timestamp,OaTmp,OaHum",
		"2021-03-11 00:00:00,41.2,80.0",
	}, "\n")

	mockClient := new(storagemocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "oa_data.csv", mock.Anything).
		Return(csvObject(oaCSV), nil)

	mockWriter := new(tsmocks.Writer)
	var written []timeseries.Point
	mockWriter.On("WritePoints", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			written = append(written, args.Get(1).([]timeseries.Point)...)
		}).
		Return(nil)

	svc := telemetry.NewService(mockClient, testBucket, testDataConfig(), mockWriter, zap.NewNop())

	report, err := svc.IngestOutsideAir(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)

	require.Len(t, written, 1)
	assert.Equal(t, timeseries.MeasurementOutsideAir, written[0].Measurement)
	_, hasRoom := written[0].Tags["room"]
	assert.False(t, hasRoom)
}
