package kvstore

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var _ Store = (*PostgresStore)(nil)

// PostgresDB is the subset of pgxpool.Pool the store needs.
type PostgresDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ PostgresDB = (*pgxpool.Pool)(nil)

type PostgresStore struct {
	db PostgresDB
	ns namespace
}

func NewPostgresStore(db PostgresDB, ns string) *PostgresStore {
	return &PostgresStore{
		db: db,
		ns: namespace(ns),
	}
}

// RunMigrations applies the kv_entry schema. dsn is a postgres:// URL.
func RunMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO kv_entry (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();`,
		s.ns.full(key), string(value),
	)
	if err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(
		ctx,
		`SELECT value FROM kv_entry WHERE key = $1;`,
		s.ns.full(key),
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM kv_entry WHERE key = $1;`, s.ns.full(key)); err != nil {
		return fmt.Errorf("postgres delete %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT key FROM kv_entry WHERE key LIKE $1 ESCAPE '\';`,
		likeEscape(s.ns.full(prefix))+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("postgres keys %s: %w", prefix, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var fullKey string
		if err := rows.Scan(&fullKey); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if k, ok := s.ns.strip(fullKey); ok {
			keys = append(keys, k)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.db.Exec(
		ctx,
		`DELETE FROM kv_entry WHERE key LIKE $1 ESCAPE '\';`,
		likeEscape(string(s.ns))+"%",
	)
	if err != nil {
		return fmt.Errorf("postgres clear: %w", err)
	}
	return nil
}
