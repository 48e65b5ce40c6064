// Package timeseries writes ingested BAS readings to InfluxDB.
//
// Per-room readings go to the "bas" measurement tagged with the room ID;
// outside-air readings go to the "outside_air" measurement. The Writer
// interface isolates the ingest service from the InfluxDB client so tests
// can capture written points.
//
// InfluxDB is an optional dependency: the server runs without it, and only
// the ingest paths require a configured connection.
package timeseries
