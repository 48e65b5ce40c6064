package reconcile

import (
	"context"
	"sort"

	"bas-manager/core/storage"

	"gorm.io/gorm"
)

// ReconcileAll performs a full reconciliation across all rooms.
// It builds indices from all three sources, computes the union of room IDs,
// and returns a result for each indicating presence and mismatches.
func ReconcileAll(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string) ([]Result, error) {
	// Build cache (which loads all indices concurrently)
	cache, err := BuildCache(ctx, spec, db, client, bucket)
	if err != nil {
		return nil, err
	}

	unionKeys := buildUnion(cache.DBIndex, cache.RosterIndex, cache.StorageSet)

	results := make([]Result, 0, len(unionKeys))
	for key := range unionKeys {
		results = append(results, buildResult(key, cache, spec.Adapter))
	}

	// Sort results by room ID for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return results, nil
}

// ReconcileOne performs a targeted reconciliation for a single room.
// It uses cached indices if available, or performs targeted queries.
func ReconcileOne(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string, query Query) (*Result, error) {
	// Try to use cache if enabled
	if spec.CacheTTL > 0 {
		cache, err := GetOrBuildCache(ctx, spec, db, client, bucket)
		if err != nil {
			return nil, err
		}

		key := findKeyFromQuery(query, cache)
		if key == "" {
			// Not found in any source
			return &Result{
				ID:             query.ID,
				DBPresent:      false,
				StoragePresent: false,
				RosterPresent:  false,
			}, nil
		}

		result := buildResult(key, cache, spec.Adapter)
		return &result, nil
	}

	// Fast path without cache: use targeted queries
	dbItem, err := spec.Adapter.QueryDB(ctx, db, query)
	if err != nil {
		return nil, err
	}

	rosterItem, err := spec.Adapter.QueryRoster(ctx, client, bucket, spec.RosterObjectName, query)
	if err != nil {
		return nil, err
	}

	// For storage, we need a room ID to check
	var key string
	if dbItem != nil {
		key = spec.Adapter.ExtractDBKey(dbItem)
	} else if rosterItem != nil {
		key = spec.Adapter.ExtractRosterKey(rosterItem)
	} else {
		key = query.ID
	}

	storagePresent := false
	if key != "" {
		storagePresent, err = spec.Adapter.CheckStorage(ctx, client, bucket, spec.StoragePrefix, spec.StorageExtension, key)
		if err != nil {
			return nil, err
		}
	}

	result := Result{
		ID:             key,
		Name:           spec.Adapter.ResolveName(dbItem, rosterItem),
		Metadata:       spec.Adapter.GetMetadata(dbItem, rosterItem),
		DBPresent:      dbItem != nil,
		RosterPresent:  rosterItem != nil,
		StoragePresent: storagePresent,
		Mismatch:       []string{},
	}

	if dbItem != nil && rosterItem != nil {
		result.Mismatch = spec.Adapter.CompareFields(dbItem, rosterItem)
	}

	return &result, nil
}

// buildUnion creates a union of all room IDs from DB, roster, and storage.
func buildUnion(dbIndex map[string]DBItem, rosterIndex map[string]RosterItem, storageSet map[string]struct{}) map[string]struct{} {
	union := make(map[string]struct{})

	for key := range dbIndex {
		union[key] = struct{}{}
	}
	for key := range rosterIndex {
		union[key] = struct{}{}
	}
	for key := range storageSet {
		union[key] = struct{}{}
	}

	return union
}

// buildResult creates a Result for a single room ID.
func buildResult(key string, cache *Cache, adapter Adapter) Result {
	dbItem, dbPresent := cache.DBIndex[key]
	rosterItem, rosterPresent := cache.RosterIndex[key]
	_, storagePresent := cache.StorageSet[key]

	result := Result{
		ID:             key,
		DBPresent:      dbPresent,
		RosterPresent:  rosterPresent,
		StoragePresent: storagePresent,
		Mismatch:       []string{},
	}

	if dbPresent || rosterPresent {
		var dbItemPtr DBItem
		var rosterItemPtr RosterItem
		if dbPresent {
			dbItemPtr = dbItem
		}
		if rosterPresent {
			rosterItemPtr = rosterItem
		}
		result.Name = adapter.ResolveName(dbItemPtr, rosterItemPtr)
		result.Metadata = adapter.GetMetadata(dbItemPtr, rosterItemPtr)
	}

	if dbPresent && rosterPresent {
		result.Mismatch = adapter.CompareFields(dbItem, rosterItem)
	}

	return result
}

// findKeyFromQuery attempts to find the room ID from a query using cached indices.
func findKeyFromQuery(query Query, cache *Cache) string {
	// Try direct ID match first
	if query.ID != "" {
		if _, exists := cache.DBIndex[query.ID]; exists {
			return query.ID
		}
		if _, exists := cache.RosterIndex[query.ID]; exists {
			return query.ID
		}
		if _, exists := cache.StorageSet[query.ID]; exists {
			return query.ID
		}
	}

	return ""
}
