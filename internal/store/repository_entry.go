package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
//
// Entries are append-only from the capture side: the monitor inserts new rows
// and the UI soft-deletes, restores or searches them. Deleting never removes
// a row, so a restore is always possible until the row is gone with its
// session.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a captured clipboard item and returns it with
// database-assigned fields (ID, CapturedAt when not supplied).
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.ClipboardEntry) (models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var created models.ClipboardEntry
	row := r.db.QueryRowContext(ctx, createEntry,
		entry.SessionID,
		entry.Content,
		entry.ContentType,
		entry.Width,
		entry.Height,
		entry.CapturedAt,
	)

	if err := row.Scan(
		&created.ID,
		&created.SessionID,
		&created.Content,
		&created.ContentType,
		&created.Width,
		&created.Height,
		&created.CapturedAt,
		&created.Deleted,
	); err != nil {
		log.Err(err).
			Str("func", "entryRepository.CreateEntry").
			Int64("session_id", entry.SessionID).
			Str("content_type", string(entry.ContentType)).
			Msg("failed to insert clipboard entry")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetEntries returns all active entries of a session, newest first.
func (r *entryRepository) GetEntries(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error) {
	return r.queryEntries(ctx, "entryRepository.GetEntries", getEntries, sessionID)
}

// GetDeletedEntries returns all soft-deleted entries of a session, newest
// first. It backs the trash view where entries can be restored.
func (r *entryRepository) GetDeletedEntries(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error) {
	return r.queryEntries(ctx, "entryRepository.GetDeletedEntries", getDeletedEntries, sessionID)
}

// GetEntry retrieves a single entry by primary key regardless of its deletion
// state, so the trash view can show full previews too.
//
// Returns [ErrEntryNotFound] when the entry does not exist.
func (r *entryRepository) GetEntry(ctx context.Context, entryID int64) (models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.ClipboardEntry
	row := r.db.QueryRowContext(ctx, getEntryByID, entryID)

	if err := row.Scan(
		&found.ID,
		&found.SessionID,
		&found.Content,
		&found.ContentType,
		&found.Width,
		&found.Height,
		&found.CapturedAt,
		&found.Deleted,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClipboardEntry{}, ErrEntryNotFound
		}

		log.Err(err).
			Str("func", "entryRepository.GetEntry").
			Int64("entry_id", entryID).
			Msg("failed to scan entry row")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetLastEntry retrieves the most recent active entry of a session. The
// monitor compares new clipboard content against it to skip duplicates.
//
// Returns [ErrEntryNotFound] when the session has no active entries.
func (r *entryRepository) GetLastEntry(ctx context.Context, sessionID int64) (models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.ClipboardEntry
	row := r.db.QueryRowContext(ctx, getLastEntry, sessionID)

	if err := row.Scan(
		&found.ID,
		&found.SessionID,
		&found.Content,
		&found.ContentType,
		&found.Width,
		&found.Height,
		&found.CapturedAt,
		&found.Deleted,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ClipboardEntry{}, ErrEntryNotFound
		}

		log.Err(err).
			Str("func", "entryRepository.GetLastEntry").
			Int64("session_id", sessionID).
			Msg("failed to scan entry row")
		return models.ClipboardEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// SearchEntries returns the active entries of a session matching the filter,
// newest first. The query is assembled dynamically from the filter fields.
func (r *entryRepository) SearchEntries(ctx context.Context, filter EntryFilter) ([]models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchEntriesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.SearchEntries").
			Int64("session_id", filter.SessionID).
			Msg("failed to build search query")
		return nil, err
	}

	return r.queryEntries(ctx, "entryRepository.SearchEntries", query, args...)
}

// DeleteEntry soft-deletes a single entry.
//
// Returns [ErrEntryNotFound] when the entry does not exist.
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	return r.execOnEntry(ctx, "entryRepository.DeleteEntry", softDeleteEntry, entryID)
}

// RestoreEntry brings a soft-deleted entry back into the active history.
//
// Returns [ErrEntryNotFound] when the entry does not exist.
func (r *entryRepository) RestoreEntry(ctx context.Context, entryID int64) error {
	return r.execOnEntry(ctx, "entryRepository.RestoreEntry", restoreEntry, entryID)
}

// ClearEntries soft-deletes every active entry of a session. Clearing an
// already-empty session is not an error.
func (r *entryRepository) ClearEntries(ctx context.Context, sessionID int64) error {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, err := r.db.ExecContext(ctx, clearEntries, sessionID); err != nil {
		log.Err(err).
			Str("func", "entryRepository.ClearEntries").
			Int64("session_id", sessionID).
			Msg("failed to clear session entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// queryEntries runs a multi-row entry query and scans the result set.
func (r *entryRepository) queryEntries(ctx context.Context, funcName, query string, args ...any) ([]models.ClipboardEntry, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to query clipboard entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.ClipboardEntry
	for rows.Next() {
		var e models.ClipboardEntry
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.Content,
			&e.ContentType,
			&e.Width,
			&e.Height,
			&e.CapturedAt,
			&e.Deleted,
		); err != nil {
			log.Err(err).
				Str("func", funcName).
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("row iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// execOnEntry runs a single-entry UPDATE and maps zero affected rows to
// [ErrEntryNotFound].
func (r *entryRepository) execOnEntry(ctx context.Context, funcName, query string, entryID int64) error {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result, err := r.db.ExecContext(ctx, query, entryID)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("entry_id", entryID).
			Msg("failed to update clipboard entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
