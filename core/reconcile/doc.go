// Package reconcile implements the three-way reconciliation engine.
//
// Every room is expected to exist in three places: the rooms database, the
// curated roster CSV, and the storage bucket (as a per-room BAS data file).
// The engine builds an index per source, takes the union of room IDs, and
// reports presence and field mismatches for each room.
//
// # Adapters
//
// Model-specific logic (loading, key extraction, field comparison) lives in
// an Adapter implementation. Adapters that also implement Mutator support
// purge (delete orphans) and sync (repair DB from roster) actions.
//
// # Caching
//
// Index building is the expensive part, so built indices are cached per
// spec with a TTL. Singleflight collapses concurrent rebuilds.
//
// # Safety
//
// Plans are inert: ApplyPlan executes nothing unless the caller passes
// Confirmed=true and DryRun=false.
package reconcile
