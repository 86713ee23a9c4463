package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

type Params struct {
	Backend   string
	Namespace string

	RedisClient  *redis.Client
	PostgresPool *pgxpool.Pool
	// PostgresDSN, when set, is used to run schema migrations before first use.
	PostgresDSN string
	SQLitePath  string

	// 0 disables the local read cache
	CacheSizeMB     int
	CacheTTLSeconds int
}

// New builds the configured Store. The returned cleanup func releases resources
// the store owns (the sqlite file handle); shared clients are left to the caller.
func New(ctx context.Context, params Params) (Store, func() error, error) {
	ns := params.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}

	noop := func() error { return nil }
	var (
		store   Store
		cleanup = noop
	)

	switch params.Backend {
	case BackendRedis:
		if params.RedisClient == nil {
			return nil, nil, errors.New("redis backend requires a redis client")
		}
		if err := params.RedisClient.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		store = NewRedisStore(params.RedisClient, ns)
	case BackendPostgres:
		if params.PostgresPool == nil {
			return nil, nil, errors.New("postgres backend requires a connection pool")
		}
		if params.PostgresDSN != "" {
			if err := RunMigrations(params.PostgresDSN); err != nil {
				return nil, nil, err
			}
		}
		store = NewPostgresStore(params.PostgresPool, ns)
	case BackendSQLite:
		sqliteStore, err := OpenSQLiteStore(params.SQLitePath, ns)
		if err != nil {
			return nil, nil, err
		}
		store = sqliteStore
		cleanup = sqliteStore.Close
	case BackendMemory:
		store = NewMemoryStore()
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", params.Backend)
	}

	if params.CacheSizeMB > 0 {
		log.Debugf("kv store: local read cache enabled, %d MB, ttl %ds", params.CacheSizeMB, params.CacheTTLSeconds)
		store = NewCachedStore(store, params.CacheSizeMB, params.CacheTTLSeconds)
	}

	log.Infof("kv store: using [%s] backend, namespace [%s]", params.Backend, ns)
	return store, cleanup, nil
}
