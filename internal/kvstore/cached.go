package kvstore

import (
	"context"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Store = (*CachedStore)(nil)

// CachedStore puts a local freecache read cache in front of another Store.
// Writes go through to the backing store first, then update the cache.
type CachedStore struct {
	store      Store
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedStore(store Store, sizeMB, ttlSeconds int) *CachedStore {
	return &CachedStore{
		store:      store,
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.cache.Del([]byte(key))
		return err
	}
	if err := s.cache.Set([]byte(key), value, s.ttlSeconds); err != nil {
		// value too large for the cache, serve it from the store
		log.Debugf("cached store, skip caching %s: %s", key, err)
		s.cache.Del([]byte(key))
	}
	return nil
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if val, err := s.cache.Get([]byte(key)); err == nil {
		return val, nil
	}

	val, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set([]byte(key), val, s.ttlSeconds); err != nil {
		log.Debugf("cached store, skip caching %s: %s", key, err)
	}
	return val, nil
}

func (s *CachedStore) Remove(ctx context.Context, key string) error {
	s.cache.Del([]byte(key))
	if err := s.store.Remove(ctx, key); err != nil {
		return err
	}
	return nil
}

func (s *CachedStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.store.Keys(ctx, prefix)
}

func (s *CachedStore) Clear(ctx context.Context) error {
	s.cache.Clear()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear backing store: %w", err)
	}
	return nil
}

// Stats reports local cache hits and misses.
func (s *CachedStore) Stats() (hits, misses int64) {
	return s.cache.HitCount(), s.cache.MissCount()
}
