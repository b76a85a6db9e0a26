// Package kvstore implements the local key-value store on top of SQLite. It
// backs the session and draft stores across application restarts, playing the
// role the device's async storage played for the original client.
package kvstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/spacebook/internal/storage"
)

type KvStore struct {
	db *sql.DB
}

func New(db *sql.DB) *KvStore {
	return &KvStore{db: db}
}

func (s *KvStore) Get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)
	var value string
	err := row.Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotExist
		}
		log.Error().Err(err).Str("key", key).Msg("kv read failed")
		return "", storage.ErrUnavailable
	}
	return value, nil
}

func (s *KvStore) Set(ctx context.Context, key, value string) error {
	return s.SetMany(ctx, map[string]string{key: value})
}

// SetMany writes all pairs inside one transaction, so a torn write cannot
// leave only some of the keys updated.
func (s *KvStore) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("kv transaction start failed")
		return storage.ErrUnavailable
	}

	for key, value := range pairs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		if err != nil {
			tx.Rollback()
			log.Error().Err(err).Str("key", key).Msg("kv write failed")
			return storage.ErrUnavailable
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("kv commit failed")
		return storage.ErrUnavailable
	}
	return nil
}

func (s *KvStore) Delete(ctx context.Context, key string) error {
	return s.DeleteMany(ctx, key)
}

func (s *KvStore) DeleteMany(ctx context.Context, keys ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("kv transaction start failed")
		return storage.ErrUnavailable
	}

	for _, key := range keys {
		if _, err = tx.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
			tx.Rollback()
			log.Error().Err(err).Str("key", key).Msg("kv delete failed")
			return storage.ErrUnavailable
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("kv commit failed")
		return storage.ErrUnavailable
	}
	return nil
}
