package credentials

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Getter looks up a single setting by key.
type Getter interface {
	Get(ctx context.Context, key string) (string, error)
}

// Store reads settings from the archon_settings table. It is the one
// external collaborator of the config reporter; callers are expected
// to substitute a default on any failure.
type Store struct {
	pool *pgxpool.Pool
}

var _ Getter = (*Store)(nil)

func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse dsn")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping")
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM archon_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", errors.Wrapf(err, "lookup setting %q", key)
	}
	return value, nil
}
