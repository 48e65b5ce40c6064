package checks_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"bas-manager/core/storage/mocks"
	"bas-manager/feature/integrity/checks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckOutsideAir(t *testing.T) {
	// One slot missing between 00:15 and 00:45
	oaCSV := strings.Join([]string{
		"timestamp,OaTmp,OaHum",
		"2021-03-11 00:00:00,41.2,80.0",
		"2021-03-11 00:15:00,41.5,79.5",
		"2021-03-11 00:45:00,41.9,79.0",
	}, "\n")

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "oa_data.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(oaCSV))), nil)

	data := testDataConfig()
	data.OAStart = "2021-03-11"
	data.OAIntervalMinutes = 15

	report, err := checks.CheckOutsideAir(context.Background(), mockClient, testBucket, data)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 0, report.RowErrors)
	assert.True(t, report.StartsOnExpectedDate)
	assert.Equal(t, time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC), report.FirstTimestamp)

	require.Len(t, report.Gaps, 1)
	assert.Equal(t, 1, report.MissingSlots)
}

func TestCheckOutsideAirWrongStart(t *testing.T) {
	oaCSV := "timestamp,OaTmp\n2021-04-01 00:00:00,50.0\n"

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, testBucket, "oa_data.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(oaCSV))), nil)

	data := testDataConfig()
	data.OAStart = "2021-03-11"
	data.OAIntervalMinutes = 15

	report, err := checks.CheckOutsideAir(context.Background(), mockClient, testBucket, data)
	require.NoError(t, err)

	assert.False(t, report.StartsOnExpectedDate)
	assert.Empty(t, report.Gaps)
}
