package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

// sessionRepository is the SQLite-backed implementation of [SessionRepository].
//
// Sessions are soft-deleted: DeleteSession flips is_deleted instead of
// removing the row, and every read filters deleted rows out. The cascade to
// the session's entries and the default-session switch run inside a single
// transaction so a crash cannot leave the user with half a deletion or two
// default sessions.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session and returns it with database-assigned
// fields (ID, CreatedAt).
//
// Returns [ErrSessionAlreadyExists] when the user already has an active
// session with the same name.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var created models.Session
	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Name, session.Default)

	if err := row.Scan(&created.ID, &created.UserID, &created.Name, &created.CreatedAt, &created.Default, &created.Deleted); err != nil {
		if isUniqueViolation(err) {
			return models.Session{}, ErrSessionAlreadyExists
		}

		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Str("name", session.Name).
			Msg("failed to insert session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetSessions returns all active sessions of the given user, default session
// first, then alphabetically by name.
func (r *sessionRepository) GetSessions(ctx context.Context, userID int64) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, getSessions, userID)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSessions").
			Int64("user_id", userID).
			Msg("failed to query sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.Default, &s.Deleted); err != nil {
			log.Err(err).
				Str("func", "sessionRepository.GetSessions").
				Int64("user_id", userID).
				Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.GetSessions").
			Int64("user_id", userID).
			Msg("row iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

// GetSessionByID retrieves a single active session by primary key.
//
// Returns [ErrSessionNotFound] when the session does not exist or is deleted.
func (r *sessionRepository) GetSessionByID(ctx context.Context, sessionID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.Session
	row := r.db.QueryRowContext(ctx, getSessionByID, sessionID)

	if err := row.Scan(&found.ID, &found.UserID, &found.Name, &found.CreatedAt, &found.Default, &found.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).
			Str("func", "sessionRepository.GetSessionByID").
			Int64("session_id", sessionID).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetSessionByName retrieves the user's active session with the given name.
//
// Returns [ErrSessionNotFound] when no active session carries that name.
func (r *sessionRepository) GetSessionByName(ctx context.Context, userID int64, name string) (models.Session, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var found models.Session
	row := r.db.QueryRowContext(ctx, getSessionByName, userID, name)

	if err := row.Scan(&found.ID, &found.UserID, &found.Name, &found.CreatedAt, &found.Default, &found.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).
			Str("func", "sessionRepository.GetSessionByName").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// RenameSession changes the name of an active session.
//
// Error handling:
//   - new name collides with another active session → [ErrSessionAlreadyExists];
//   - session missing or deleted → [ErrSessionNotFound].
func (r *sessionRepository) RenameSession(ctx context.Context, sessionID int64, name string) error {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result, err := r.db.ExecContext(ctx, renameSession, name, sessionID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSessionAlreadyExists
		}

		log.Err(err).
			Str("func", "sessionRepository.RenameSession").
			Int64("session_id", sessionID).
			Str("name", name).
			Msg("failed to rename session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession soft-deletes a session together with all its clipboard
// entries. Both updates run in one transaction.
//
// Returns [ErrSessionNotFound] when the session does not exist.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID int64) error {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Int64("session_id", sessionID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, softDeleteSession, sessionID)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Int64("session_id", sessionID).
			Msg("failed to soft-delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	if _, err := tx.ExecContext(ctx, softDeleteSessionEntries, sessionID); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Int64("session_id", sessionID).
			Msg("failed to soft-delete session entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "sessionRepository.DeleteSession").
			Int64("session_id", sessionID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// SetDefaultSession marks the given session as the user's default one,
// clearing the flag from every other session first. Both updates run in one
// transaction, preserving the at-most-one-default invariant.
//
// Returns [ErrSessionNotFound] when the session does not exist, is deleted,
// or belongs to another user.
func (r *sessionRepository) SetDefaultSession(ctx context.Context, userID, sessionID int64) error {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetDefaultSession").
			Int64("user_id", userID).
			Int64("session_id", sessionID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearDefaultSessions, userID); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetDefaultSession").
			Int64("user_id", userID).
			Msg("failed to clear default sessions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, markDefaultSession, sessionID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SetDefaultSession").
			Int64("user_id", userID).
			Int64("session_id", sessionID).
			Msg("failed to mark default session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "sessionRepository.SetDefaultSession").
			Int64("user_id", userID).
			Int64("session_id", sessionID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// CountSessions returns the number of active sessions the user has.
func (r *sessionRepository) CountSessions(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var count int64
	row := r.db.QueryRowContext(ctx, countSessions, userID)

	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.CountSessions").
			Int64("user_id", userID).
			Msg("failed to count sessions")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
