package checks_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"bas-manager/core/storage/mocks"
	"bas-manager/feature/integrity/checks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckOccupancy(t *testing.T) {
	rosterCSV := `room,floor,sqft,occupant,professor,has_occupancy_sensor,sensor_status
A3-70,3,410,Jordan Lee,Dr. Smith,yes,ok
A3-71,3,380,,,no,
`

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "combined_milas_hall/"
	})).Return(listChannel(
		"combined_milas_hall/Flo2.3-A3-70.csv",
		"combined_milas_hall/Flo2.3-A3-71.csv",
	))
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "occupancy_data/"
	})).Return(listChannel(
		"occupancy_data/Flo2.3-A3-70.csv", // consistent
		"occupancy_data/Flo2.3-A3-71.csv", // rostered but no sensor listed
		"occupancy_data/Flo2.3-B9-99.csv", // unknown room
	))
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(rosterCSV))), nil)

	report, err := checks.CheckOccupancy(context.Background(), mockClient, testBucket, testDataConfig())
	require.NoError(t, err)

	assert.Equal(t, 3, report.RoomsChecked)
	assert.Equal(t, []string{"B9-99"}, report.NotInBAS)
	assert.Equal(t, []string{"B9-99"}, report.NotRostered)
	assert.Equal(t, []string{"A3-71"}, report.SensorNotListed)
	assert.False(t, report.OK())
}

func TestCheckOccupancyConsistent(t *testing.T) {
	rosterCSV := `room,floor,sqft,occupant,professor,has_occupancy_sensor,sensor_status
A3-70,3,410,Jordan Lee,Dr. Smith,yes,ok
`

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "combined_milas_hall/"
	})).Return(listChannel("combined_milas_hall/Flo2.3-A3-70.csv"))
	mockClient.On("ListObjects", mock.Anything, testBucket, mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "occupancy_data/"
	})).Return(listChannel("occupancy_data/Flo2.3-A3-70.csv"))
	mockClient.On("GetObject", mock.Anything, testBucket, "RoomStatsCopy.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(rosterCSV))), nil)

	report, err := checks.CheckOccupancy(context.Background(), mockClient, testBucket, testDataConfig())
	require.NoError(t, err)
	assert.True(t, report.OK())
}
