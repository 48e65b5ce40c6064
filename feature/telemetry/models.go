package telemetry

import "time"

// Well-known BAS column names as they appear in the CSV exports.
const (
	// ColRoomTemp is the measured room temperature.
	ColRoomTemp = "RmTmp"
	// ColCoolingSetpoint is the cooling setpoint column.
	ColCoolingSetpoint = "RmTmpCspt"
	// ColHeatingSetpoint is the heating setpoint column.
	ColHeatingSetpoint = "RmTmpHpst"
	// ColCO2 is the room CO2 concentration in ppm.
	ColCO2 = "RmCO2"
	// ColOutsideTemp is the outside-air temperature column.
	ColOutsideTemp = "OaTmp"
	// ColOutsideHumidity is the outside-air humidity column.
	ColOutsideHumidity = "OaHum"
)

// Reading is a single timestamped row of a BAS or outside-air export.
// Values holds the numeric columns keyed by header name; blank cells are
// simply absent from the map.
type Reading struct {
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
}

// RowError records a row that could not be parsed. Bad rows never abort a
// file; they are collected and surfaced in reports.
type RowError struct {
	Line int    `json:"line"`
	Err  string `json:"error"`
}

// Series is the parsed content of one export file.
type Series struct {
	// Columns are the numeric column names in header order.
	Columns []string `json:"columns"`
	// Readings are the parsed rows in file order.
	Readings []Reading `json:"readings"`
	// RowErrors are rows skipped during parsing.
	RowErrors []RowError `json:"row_errors,omitempty"`
}

// Gap describes a hole in a fixed-interval series.
type Gap struct {
	// From is the last reading before the hole.
	From time.Time `json:"from"`
	// To is the first reading after the hole.
	To time.Time `json:"to"`
	// Missing is the number of absent interval slots.
	Missing int `json:"missing"`
}

// CO2Record is a cleaned Airthings CO2 reading.
type CO2Record struct {
	Date string `json:"date"`
	Time string `json:"time"`
	CO2  string `json:"co2"`
}

// IngestReport summarizes one ingest run.
type IngestReport struct {
	Source    string `json:"source"`
	Rows      int    `json:"rows"`
	Written   int    `json:"written"`
	RowErrors int    `json:"row_errors"`
}
