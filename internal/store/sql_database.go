package store

import (
	"database/sql"
	"sync"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/migrations"
)

// DB wraps the shared SQLite connection together with the mutex that
// serializes access to it.
//
// The clipboard monitor writes from its own goroutine while the TUI reads and
// writes from Bubble Tea command goroutines; every repository method takes mu
// for the duration of its statement (or transaction) so the database handle
// only ever sees one caller at a time.
type DB struct {
	*sql.DB
	mu     sync.Mutex
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
