package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

const redisScanCount = 100

type RedisStore struct {
	redisClient *redis.Client
	ns          namespace
}

func NewRedisStore(redisClient *redis.Client, ns string) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ns:          namespace(ns),
	}
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	cmd := s.redisClient.Set(ctx, s.ns.full(key), string(value), 0)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.redisClient.Get(ctx, s.ns.full(key))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return []byte(cmd.Val()), nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, s.ns.full(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	fullKeys, err := s.scan(ctx, globEscape(s.ns.full(prefix))+"*")
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(fullKeys))
	for _, fk := range fullKeys {
		if k, ok := s.ns.strip(fk); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	fullKeys, err := s.scan(ctx, globEscape(string(s.ns))+"*")
	if err != nil {
		return err
	}
	if len(fullKeys) == 0 {
		return nil
	}
	if err := s.redisClient.Del(ctx, fullKeys...).Err(); err != nil {
		return fmt.Errorf("redis clear: %w", err)
	}
	return nil
}

func (s *RedisStore) scan(ctx context.Context, match string) ([]string, error) {
	var (
		cursor uint64
		found  []string
	)
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, match, redisScanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %s: %w", match, err)
		}
		found = append(found, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return found, nil
}
