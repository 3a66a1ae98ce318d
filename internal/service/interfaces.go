package service

import (
	"context"

	"github.com/MKhiriev/clip-keeper/internal/clipboard"
	"github.com/MKhiriev/clip-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService defines the contract for account registration, credential
// verification, and the local remember-me flow backed by the client state
// file.
type AuthService interface {
	// Register creates a new account. The password is validated, hashed
	// with bcrypt, and never stored in plain text.
	// Returns ErrInvalidDataProvided (wrapping the concrete validation
	// error) on bad input and store.ErrUserAlreadyExists when the
	// username is taken.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates an existing user. When creds.Remember is set, a
	// signed remember-me token is persisted into the client state file so
	// the next launch can skip the password prompt.
	// Both an unknown username and a wrong password return
	// ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// RestoreSession resumes the account from the remember-me token in
	// the client state file. A missing token returns ErrNoStoredToken; an
	// expired or tampered token returns ErrTokenIsExpiredOrInvalid, and
	// callers are expected to fall back to the login screen silently.
	RestoreSession(ctx context.Context) (models.User, error)

	// Logout discards the stored remember-me token.
	Logout(ctx context.Context) error
}

// SessionService manages the named buckets clipboard entries are captured
// into and the selection rules around them.
type SessionService interface {
	// Create adds a live session with the given trimmed name.
	// Returns store.ErrSessionAlreadyExists when the user already has a
	// live session with that name.
	Create(ctx context.Context, userID int64, name string) (models.Session, error)

	// Rename changes the session name, same validation and duplicate
	// rules as Create.
	Rename(ctx context.Context, sessionID int64, name string) error

	// Delete soft-deletes the session together with its entries and
	// returns the session selection should move to: the default one, or
	// the first remaining, or a freshly recreated default session when
	// the deleted one was the last.
	Delete(ctx context.Context, userID, sessionID int64) (models.Session, error)

	// SetDefault marks one session as pre-selected after login, clearing
	// the flag from all others in the same transaction.
	SetDefault(ctx context.Context, userID, sessionID int64) error

	// List returns the user's live sessions, default first, then by name.
	List(ctx context.Context, userID int64) ([]models.Session, error)

	// EnsureDefault creates the configured default session for users that
	// have no live sessions and returns it. An existing default (or any
	// live session) short-circuits the creation.
	EnsureDefault(ctx context.Context, userID int64) (models.Session, error)

	// PickStartup returns the session to auto-select after login: the
	// remembered one if still live, else the default, else the first.
	PickStartup(ctx context.Context, userID int64) (models.Session, error)

	// RememberSelection records the active session in the client state
	// file so the next login lands on it.
	RememberSelection(ctx context.Context, userID, sessionID int64) error
}

// HistoryService manages captured clipboard entries: persistence with
// dedupe and size limits, browsing, soft delete/restore, and copying an
// entry back onto the system clipboard.
type HistoryService interface {
	// Save persists one clipboard sample under the given session.
	// Oversized text is truncated at a rune boundary with a marker
	// suffix; images are stored base64-encoded. saved is false when the
	// sample was skipped as a duplicate of the session's last live entry.
	Save(ctx context.Context, sessionID int64, item *clipboard.Item) (entry models.ClipboardEntry, saved bool, err error)

	// List returns the session's live entries, newest first.
	List(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error)

	// Search filters the session's live entries by a case-insensitive
	// content substring and/or a content type. Empty arguments are not
	// applied.
	Search(ctx context.Context, sessionID int64, query string, contentType models.ContentType) ([]models.ClipboardEntry, error)

	// Delete soft-deletes one entry; Restore brings it back; Deleted
	// lists what can be restored, newest first.
	Delete(ctx context.Context, entryID int64) error
	Restore(ctx context.Context, entryID int64) error
	Deleted(ctx context.Context, sessionID int64) ([]models.ClipboardEntry, error)

	// Clear soft-deletes every live entry of the session.
	Clear(ctx context.Context, sessionID int64) error

	// CopyToClipboard puts the entry's content back onto the system
	// clipboard. Capture is paused around the write and the written value
	// is marked as seen so the monitor does not recapture it.
	CopyToClipboard(ctx context.Context, entryID int64) error

	// Preview returns the single-line summary of an entry shown in lists.
	Preview(entry models.ClipboardEntry) string

	// SetCaptureGuard wires the monitor's pause/resume hooks used by
	// CopyToClipboard. Called once during composition; a nil guard keeps
	// copy-back working without suppression.
	SetCaptureGuard(guard CaptureGuard)
}

// CaptureGuard is the narrow slice of the monitor the history service needs
// to write to the clipboard without its own write being captured back.
type CaptureGuard interface {
	// Pause suspends capture; Resume lifts the suspension.
	Pause()
	Resume()

	// MarkSeen registers the item as the monitor's last-seen clipboard
	// value, so the next poll tick treats it as already handled.
	MarkSeen(item *clipboard.Item)
}

// MonitorEvent is what the clipboard monitor reports to the UI after a poll
// tick that changed state: either a freshly persisted entry or a failure
// worth showing on the status line.
type MonitorEvent struct {
	// Entry is the persisted clipboard entry. Zero when Err is set.
	Entry models.ClipboardEntry

	// Err carries a clipboard read or storage failure.
	Err error
}

// MonitorJob is the background clipboard poller. Its lifecycle half
// (Name/Start/Stop) satisfies the workers.Job contract; the rest is the
// capture control surface used by the services and the UI.
type MonitorJob interface {
	CaptureGuard

	// Name identifies the job in logs.
	Name() string

	// Start launches the polling goroutine. Returns
	// ErrMonitorAlreadyStarted when the job is already running.
	Start(ctx context.Context) error

	// Stop cancels the polling goroutine and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()

	// SetSession switches the session new captures are stored under.
	SetSession(sessionID int64)

	// Events returns the channel monitor events are delivered on. The
	// channel is never closed; events are dropped when the consumer lags.
	Events() <-chan MonitorEvent
}
