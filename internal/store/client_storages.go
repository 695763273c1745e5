package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// ClientStorages groups the client-side stores kept in the local SQLite
// file.
type ClientStorages struct {
	// SessionStore keeps the bearer token between CLI invocations.
	SessionStore SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if it
//     does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SessionStore] on top of the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSessionStore(db, logger),
		db:           db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
