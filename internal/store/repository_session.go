package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// sessionStore is the SQLite-backed [SessionStore] of the client.
type sessionStore struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewSessionStore(db *DB, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session store")
	return &sessionStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sessionStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSessionQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrSessionKeyNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*sessionStore.Get").Msg("error reading session value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sessionStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetSessionQuery(key, value, s.now().UTC())
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Set").Msg("error writing session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *sessionStore) Remove(ctx context.Context, key string) error {
	query, args, err := buildRemoveSessionQuery(key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Remove").Msg("error removing session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
