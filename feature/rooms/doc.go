// Package rooms implements the room roster feature.
//
// It reconciles three sources of truth for each room:
//  1. Storage (S3/MinIO): The per-room BAS CSV exports.
//  2. Roster (CSV): The manually curated room metadata table.
//  3. Database: The rooms table kept in sync from the roster.
//
// # Reconcile Adapter
//
// This package plugs into the `core/reconcile` engine via a specialized
// adapter (`feature/rooms/reconcile`), which also implements the Mutator
// interface for purge and sync operations.
//
// # Components
//
//   - Service: Lists rooms, builds detail reports, and drives reconciliation.
//   - Handler: Exposes HTTP endpoints for room listing and detail reports.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /rooms : List all rostered rooms.
//   - GET /rooms/:identifier : Detailed status for a room (e.g. 'A3-70').
package rooms
