package telemetry_test

import (
	"strings"
	"testing"
	"time"

	"bas-manager/feature/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	input := strings.Join([]string{
		"timestamp,RmTmp,RmTmpCspt,RmTmpHpst,RmCO2",
		"2021-03-11 00:00:00 EST,70.5,74.0,68.0,412",
		"2021-03-11 00:15:00 EST (DST),70.6,74.0,68.0,",
		"not-a-timestamp,70.7,74.0,68.0,401",
		"2021-03-11 00:30:00,70.8,NaNish,68.0,405",
	}, "\n")

	series, err := telemetry.ParseSeries(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"RmTmp", "RmTmpCspt", "RmTmpHpst", "RmCO2"}, series.Columns)
	require.Len(t, series.Readings, 3)
	require.Len(t, series.RowErrors, 1)
	assert.Equal(t, 4, series.RowErrors[0].Line)

	first := series.Readings[0]
	assert.Equal(t, time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, 70.5, first.Values["RmTmp"])
	assert.Equal(t, 412.0, first.Values["RmCO2"])

	// Blank cell omitted from the map
	second := series.Readings[1]
	_, ok := second.Values["RmCO2"]
	assert.False(t, ok)
	assert.Equal(t, 70.6, second.Values["RmTmp"])

	// Non-numeric cell skipped, row kept
	third := series.Readings[2]
	_, ok = third.Values["RmTmpCspt"]
	assert.False(t, ok)
	assert.Equal(t, 70.8, third.Values["RmTmp"])
}

func TestParseSeriesMissingTimestampColumn(t *testing.T) {
	input := "RmTmp,RmCO2\n70.5,412\n"

	_, err := telemetry.ParseSeries(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}

func TestParseSeriesFieldCountMismatch(t *testing.T) {
	input := strings.Join([]string{
		"timestamp,RmTmp",
		"2021-03-11 00:00:00,70.5",
		"2021-03-11 00:15:00,70.6,extra",
	}, "\n")

	series, err := telemetry.ParseSeries(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, series.Readings, 1)
	require.Len(t, series.RowErrors, 1)
	assert.Equal(t, 3, series.RowErrors[0].Line)
}
