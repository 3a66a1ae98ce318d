package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/clip-keeper/internal/config"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/internal/validators"
	"github.com/MKhiriev/clip-keeper/models"
)

// sessionService is the concrete implementation of SessionService.
//
// It enforces the session invariants on top of the repository: a user
// always keeps at least one live session, at most one of them is default,
// and the remembered selection in the client state file survives restarts.
type sessionService struct {
	// sessionRepository is the data-access layer for sessions.
	sessionRepository store.SessionRepository

	// stateStore persists the per-user last selected session.
	stateStore store.StateStore

	// validator enforces the session name rules.
	validator validators.Validator

	// defaultSessionName is the name given to the session created
	// automatically for users with no live sessions.
	defaultSessionName string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a new SessionService wired to the given
// repositories, taking the default session name from cfg.
func NewSessionService(sessionRepository store.SessionRepository, stateStore store.StateStore, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository:  sessionRepository,
		stateStore:         stateStore,
		validator:          validators.NewClipDataValidator(),
		defaultSessionName: cfg.DefaultSessionName,
		logger:             logger,
	}
}

// Create adds a live session named name for the given user. The name is
// trimmed before validation and storage.
//
// Returns ErrInvalidDataProvided (wrapping the validation error) on a blank
// name and store.ErrSessionAlreadyExists (wrapped) when the user already has
// a live session with that name.
func (s *sessionService) Create(ctx context.Context, userID int64, name string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session := models.Session{UserID: userID, Name: strings.TrimSpace(name)}
	if err := s.validator.Validate(ctx, session, validators.FieldSessionName, validators.FieldUserID); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid session data provided")
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	createdSession, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("name", session.Name).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return createdSession, nil
}

// Rename changes the session name, applying the same validation and
// duplicate rules as Create.
func (s *sessionService) Rename(ctx context.Context, sessionID int64, name string) error {
	log := logger.FromContext(ctx)

	trimmedName := strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, models.Session{Name: trimmedName}, validators.FieldSessionName); err != nil {
		log.Error().Err(err).Int64("session_id", sessionID).Msg("invalid session name provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.sessionRepository.RenameSession(ctx, sessionID, trimmedName); err != nil {
		log.Err(err).Int64("session_id", sessionID).Str("name", trimmedName).Msg("session rename ended with error")
		return fmt.Errorf("session rename ended with error: %w", err)
	}

	return nil
}

// Delete soft-deletes the session together with all its entries and picks
// the session selection should move to.
//
// When the deleted session was the user's last one, the configured default
// session is recreated so the user is never left without a capture target.
// Otherwise the default session is returned, or the first remaining one.
func (s *sessionService) Delete(ctx context.Context, userID, sessionID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		log.Err(err).Int64("session_id", sessionID).Msg("session deletion ended with error")
		return models.Session{}, fmt.Errorf("session deletion ended with error: %w", err)
	}

	remaining, err := s.sessionRepository.GetSessions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing sessions after deletion failed")
		return models.Session{}, fmt.Errorf("listing sessions after deletion failed: %w", err)
	}

	if len(remaining) == 0 {
		log.Info().Int64("user_id", userID).Msg("last session deleted, recreating the default one")
		return s.createDefaultSession(ctx, userID)
	}

	// repository orders default-first
	return remaining[0], nil
}

// SetDefault marks the session as pre-selected after login. The repository
// clears the flag from all of the user's sessions and sets the new one in a
// single transaction, so at most one default survives.
func (s *sessionService) SetDefault(ctx context.Context, userID, sessionID int64) error {
	log := logger.FromContext(ctx)

	if err := s.sessionRepository.SetDefaultSession(ctx, userID, sessionID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("session_id", sessionID).Msg("setting default session failed")
		return fmt.Errorf("setting default session failed: %w", err)
	}

	return nil
}

// List returns the user's live sessions, the default one first, the rest by
// name.
func (s *sessionService) List(ctx context.Context, userID int64) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	sessions, err := s.sessionRepository.GetSessions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing sessions failed")
		return nil, fmt.Errorf("listing sessions failed: %w", err)
	}

	return sessions, nil
}

// EnsureDefault guarantees the user has at least one live session.
//
// Called after registration and login: when no live sessions exist, the
// configured default session is created with the default flag set and
// returned. When sessions already exist, the default (or the first) one is
// returned and nothing is written.
func (s *sessionService) EnsureDefault(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	sessions, err := s.sessionRepository.GetSessions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing sessions failed")
		return models.Session{}, fmt.Errorf("listing sessions failed: %w", err)
	}

	if len(sessions) > 0 {
		return sessions[0], nil
	}

	return s.createDefaultSession(ctx, userID)
}

// PickStartup returns the session to auto-select after login: the
// remembered one if still live, else the default, else the first. A user
// with no live sessions gets the default session recreated.
func (s *sessionService) PickStartup(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	state, err := s.stateStore.Load(ctx)
	if err != nil {
		// the remembered selection is a convenience, not worth failing login over
		log.Err(err).Msg("loading client state failed")
		state = models.ClientState{}
	}

	if sessionID, ok := state.LastSession(userID); ok {
		session, err := s.sessionRepository.GetSessionByID(ctx, sessionID)
		if err == nil && session.UserID == userID {
			return session, nil
		}
		if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Int64("session_id", sessionID).Msg("loading remembered session failed")
		}
	}

	return s.EnsureDefault(ctx, userID)
}

// RememberSelection records the active session in the client state file so
// the next login lands on it.
func (s *sessionService) RememberSelection(ctx context.Context, userID, sessionID int64) error {
	log := logger.FromContext(ctx)

	state, err := s.stateStore.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading client state failed")
		return fmt.Errorf("loading client state failed: %w", err)
	}

	state.RememberSession(userID, sessionID)

	if err = s.stateStore.Save(ctx, state); err != nil {
		log.Err(err).Msg("saving client state failed")
		return fmt.Errorf("saving client state failed: %w", err)
	}

	return nil
}

// createDefaultSession inserts the configured default session with the
// default flag set.
func (s *sessionService) createDefaultSession(ctx context.Context, userID int64) (models.Session, error) {
	log := logger.FromContext(ctx)

	createdSession, err := s.sessionRepository.CreateSession(ctx, models.Session{
		UserID:  userID,
		Name:    s.defaultSessionName,
		Default: true,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("default session creation ended with error")
		return models.Session{}, fmt.Errorf("default session creation ended with error: %w", err)
	}

	return createdSession, nil
}
