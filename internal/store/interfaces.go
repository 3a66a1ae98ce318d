package store

import (
	"context"

	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the low-level account store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByName(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository manages the named buckets clipboard entries are captured
// into. All reads exclude soft-deleted rows.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	GetSessions(ctx context.Context, userID int64) ([]models.Session, error)
	GetSessionByID(ctx context.Context, sessionID int64) (models.Session, error)
	GetSessionByName(ctx context.Context, userID int64, name string) (models.Session, error)
	RenameSession(ctx context.Context, sessionID int64, name string) error
	DeleteSession(ctx context.Context, sessionID int64) error
	SetDefaultSession(ctx context.Context, userID, sessionID int64) error
	CountSessions(ctx context.Context, userID int64) (int64, error)
}

// EntryRepository manages captured clipboard entries. All reads exclude
// soft-deleted rows except GetDeletedEntries and GetEntry.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.ClipboardEntry) (models.ClipboardEntry, error)
	GetEntries(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error)
	GetEntry(ctx context.Context, entryID int64) (models.ClipboardEntry, error)
	GetLastEntry(ctx context.Context, sessionID int64) (models.ClipboardEntry, error)
	SearchEntries(ctx context.Context, filter EntryFilter) ([]models.ClipboardEntry, error)
	DeleteEntry(ctx context.Context, entryID int64) error
	RestoreEntry(ctx context.Context, entryID int64) error
	ClearEntries(ctx context.Context, sessionID int64) error
	GetDeletedEntries(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error)
}

// StateStore persists the local client state (install ID, remember-me token,
// last selected sessions) between launches.
type StateStore interface {
	Load(ctx context.Context) (models.ClientState, error)
	Save(ctx context.Context, state models.ClientState) error
}
