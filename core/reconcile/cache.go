package reconcile

import (
	"context"
	"sync"
	"time"

	"bas-manager/core/storage"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Cache holds pre-built indices for fast targeted reconciliation.
type Cache struct {
	// DBIndex is the indexed map of database rows by room ID.
	DBIndex map[string]DBItem

	// RosterIndex is the indexed map of roster entries by room ID.
	RosterIndex map[string]RosterItem

	// StorageSet is the set of room IDs with a data file in storage.
	StorageSet map[string]struct{}

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *Cache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all reconcile caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	sf     singleflight.Group
}

// globalCacheStore is the singleton cache store for all reconcile operations.
var globalCacheStore = &cacheStore{
	caches: make(map[string]*Cache),
}

// BuildCache builds a new cache for the given spec by loading all indices.
// This function does NOT store the cache; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string) (*Cache, error) {
	var (
		dbIndex     map[string]DBItem
		rosterIndex map[string]RosterItem
		storageSet  map[string]struct{}
		dbErr       error
		rosterErr   error
		storageErr  error
		wg          sync.WaitGroup
	)

	// Build indices concurrently
	wg.Add(3)

	go func() {
		defer wg.Done()
		dbIndex, dbErr = spec.Adapter.LoadDBIndex(ctx, db)
	}()

	go func() {
		defer wg.Done()
		rosterIndex, rosterErr = spec.Adapter.LoadRosterIndex(ctx, client, bucket, spec.RosterObjectName)
	}()

	go func() {
		defer wg.Done()
		storageSet, storageErr = spec.Adapter.LoadStorageSet(ctx, client, bucket, spec.StoragePrefix, spec.StorageExtension)
	}()

	wg.Wait()

	if dbErr != nil {
		return nil, dbErr
	}
	if rosterErr != nil {
		return nil, rosterErr
	}
	if storageErr != nil {
		return nil, storageErr
	}

	return &Cache{
		DBIndex:     dbIndex,
		RosterIndex: rosterIndex,
		StorageSet:  storageSet,
		Built:       time.Now(),
		TTL:         spec.CacheTTL,
	}, nil
}

// GetOrBuildCache retrieves a cache for the given spec from the store,
// or builds a new one if it doesn't exist or has expired.
// Uses singleflight to prevent cache stampedes.
func GetOrBuildCache(ctx context.Context, spec *Spec, db *gorm.DB, client storage.Client, bucket string) (*Cache, error) {
	cacheKey := spec.CacheKey()

	// Fast path: check if cache exists and is fresh
	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	// Slow path: build cache using singleflight to prevent stampedes
	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		newCache, err := BuildCache(ctx, spec, db, client, bucket)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newCache
		globalCacheStore.mu.Unlock()

		return newCache, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Cache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
// This is useful for testing or forcing a rebuild after mutations.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
