// Package telemetry implements parsing, serving, and ingestion of the
// building's sensor exports.
//
// Room files and the outside-air file are plain CSV exports whose first
// column holds a timestamp and whose remaining columns hold sensor values
// (temperature, setpoints, CO2, humidity). The package parses them
// header-driven, so rooms with differing column sets are handled uniformly.
//
// # Components
//
//   - Service: Loads series from object storage, merges outside-air data,
//     filters to occupied schedules, and ingests readings into the
//     time-series store.
//   - Handler: Exposes HTTP endpoints for room and outside-air series.
//   - Feature: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /telemetry/:room : Sensor series for a room (e.g. 'A3-70').
//   - GET /telemetry/outside-air : Building-wide outside-air series.
package telemetry
