package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseAirthings cleans an Airthings sensor export.
//
// The export is a CSV whose data rows pack all fields into a single cell,
// e.g. "2024-11-11T21:30:00;;;250;;;;;": an ISO timestamp followed by
// semicolon-separated fields, the fourth of which is the CO2 reading in
// ppm. Rows with an empty CO2 field are dropped; malformed rows are
// collected as RowErrors.
func ParseAirthings(r io.Reader) ([]CO2Record, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Header row
	if _, err := reader.Read(); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var (
		records   []CO2Record
		rowErrors []RowError
	)

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Err: err.Error()})
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		raw := row[0]
		date, rest, found := strings.Cut(raw, "T")
		if !found {
			rowErrors = append(rowErrors, RowError{Line: line, Err: fmt.Sprintf("no time separator in %q", raw)})
			continue
		}

		fields := strings.Split(rest, ";")
		if len(fields) < 5 {
			rowErrors = append(rowErrors, RowError{Line: line, Err: fmt.Sprintf("expected at least 5 semicolon fields in %q", raw)})
			continue
		}

		co2 := fields[3]
		if co2 == "" {
			continue
		}

		records = append(records, CO2Record{
			Date: date,
			Time: fields[0],
			CO2:  co2,
		})
	}

	return records, rowErrors, nil
}

// WriteCO2 writes cleaned CO2 records as a CSV with a Date,Time,CO2 header.
func WriteCO2(w io.Writer, records []CO2Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Time", "CO2"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		if err := writer.Write([]string{rec.Date, rec.Time, rec.CO2}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
