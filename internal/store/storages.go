package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// ClientStorages groups all storage repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// UserRepository is the SQLite-backed store for local accounts.
	UserRepository UserRepository

	// SessionRepository is the SQLite-backed store for clipboard sessions.
	SessionRepository SessionRepository

	// EntryRepository is the SQLite-backed store for captured clipboard
	// entries.
	EntryRepository EntryRepository

	// StateStore persists the client state file (install ID, remember-me
	// token, last selected sessions).
	StateStore StateStore
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing that connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		UserRepository:    NewUserRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		EntryRepository:   NewEntryRepository(db, logger),
		StateStore:        NewFileStateStore(cfg.State.Path, logger),
	}, nil
}
