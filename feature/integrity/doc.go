// Package integrity implements health checks for the dataset.
//
// # Checks
//
//   - Structure: required prefixes and data objects exist in the bucket.
//   - Naming: per-room files follow the Flo2.3-<room>.csv convention.
//   - Outside air: the series starts on the expected date and has no gaps.
//   - Occupancy: the occupancy subset is consistent with the full export
//     set and the roster.
//   - Database: the rooms table schema matches the model.
//
// Structure and naming checks can optionally fix what they find; the rest
// are read-only reports.
//
// # HTTP Endpoints
//
//   - GET /integrity : Run all checks.
//   - GET /integrity/structure?fix=true : Layout check, optional fix.
//   - GET /integrity/naming?fix=true : Naming check, optional stray cleanup.
//   - GET /integrity/oa : Outside-air continuity report.
//   - GET /integrity/occupancy : Occupancy subset report.
//   - GET /integrity/database : Schema report.
package integrity
