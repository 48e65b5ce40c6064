package models

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bas-manager/core/utils"
)

// rosterHeader is the canonical column order used when rewriting the roster.
var rosterHeader = []string{
	"room", "floor", "sqft", "occupant", "professor", "has_occupancy_sensor", "sensor_status",
}

// ParseRoster reads the curated room metadata CSV.
//
// Columns are matched by header name, so column order and extra columns are
// tolerated. Rows without a room ID are skipped. Rows the CSV reader cannot
// parse are collected as RowErrors rather than aborting the roster.
func ParseRoster(r io.Reader) ([]RosterRecord, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := colIndex["room"]; !ok {
		return nil, nil, fmt.Errorf("missing 'room' column in roster header")
	}

	cell := func(row []string, name string) string {
		i, ok := colIndex[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []RosterRecord
	var rowErrors []RowError
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			rowErrors = append(rowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}

		room := cell(row, "room")
		if room == "" {
			continue
		}

		records = append(records, RosterRecord{
			Room:               room,
			Floor:              cell(row, "floor"),
			Sqft:               utils.ToInt(cell(row, "sqft")),
			Occupant:           cell(row, "occupant"),
			Professor:          cell(row, "professor"),
			HasOccupancySensor: parseRosterBool(cell(row, "has_occupancy_sensor")),
			SensorStatus:       cell(row, "sensor_status"),
		})
	}

	return records, rowErrors, nil
}

// WriteRoster writes records back out in the canonical column order.
func WriteRoster(w io.Writer, records []RosterRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(rosterHeader); err != nil {
		return fmt.Errorf("failed to write roster header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Room,
			rec.Floor,
			strconv.Itoa(rec.Sqft),
			rec.Occupant,
			rec.Professor,
			formatRosterBool(rec.HasOccupancySensor),
			rec.SensorStatus,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write roster row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseRosterBool(val string) bool {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

func formatRosterBool(val bool) string {
	if val {
		return "yes"
	}
	return "no"
}
