package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// timestampColumn is the header name of the timestamp column in BAS exports.
const timestampColumn = "timestamp"

// timestampLayout is the layout of BAS timestamps once trailing junk is removed.
const timestampLayout = "2006-01-02 15:04:05"

// splitTimestamp parses a raw BAS timestamp cell. Exports sometimes append
// extra tokens after the time (time zone strings, DST markers), so only the
// first two whitespace-separated tokens are kept.
func splitTimestamp(cell string) (time.Time, error) {
	fields := strings.Fields(cell)
	if len(fields) < 2 {
		return time.Time{}, fmt.Errorf("malformed timestamp %q", cell)
	}
	ts, err := time.Parse(timestampLayout, fields[0]+" "+fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", cell, err)
	}
	return ts, nil
}

// ParseSeries reads a BAS or outside-air CSV export.
//
// The first row is the header and must contain a timestamp column. Every
// other column is treated as numeric; blank cells are omitted from the
// reading, and rows with unparseable timestamps or field counts are
// collected as RowErrors rather than aborting the file.
func ParseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	tsIndex := -1
	columns := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		header[i] = name
		if strings.EqualFold(name, timestampColumn) {
			tsIndex = i
			continue
		}
		columns = append(columns, name)
	}
	if tsIndex == -1 {
		return nil, fmt.Errorf("missing %q column in header", timestampColumn)
	}

	series := &Series{Columns: columns}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			series.RowErrors = append(series.RowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}
		if len(record) != len(header) {
			series.RowErrors = append(series.RowErrors, RowError{
				Line: line,
				Err:  fmt.Sprintf("expected %d fields, got %d", len(header), len(record)),
			})
			continue
		}

		ts, err := splitTimestamp(record[tsIndex])
		if err != nil {
			series.RowErrors = append(series.RowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}

		reading := Reading{Timestamp: ts, Values: make(map[string]float64)}
		for i, cell := range record {
			if i == tsIndex {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				// Non-numeric cell: skip the value, keep the row
				continue
			}
			reading.Values[header[i]] = v
		}
		series.Readings = append(series.Readings, reading)
	}

	return series, nil
}
