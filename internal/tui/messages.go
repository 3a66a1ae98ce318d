package tui

import (
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root model to the named page. The optional
// Payload is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. It is produced by the
// welcome page (silent remember-me restore) and by the login form; the
// root model consumes successful results and quits the flow.
type LoginResult struct {
	Err      error
	Username string
	User     models.User
}

// RegisterResult reports the outcome of the registration form.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is carried back to the menu page after a
// successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type sessionsLoadedMsg struct {
	sessions []models.Session
	err      error
}

type entriesLoadedMsg struct {
	entries []models.ClipboardEntry
	err     error
}

type sessionCreatedMsg struct {
	session models.Session
	err     error
}

type sessionRenamedMsg struct {
	err error
}

type sessionDeletedMsg struct {
	deletedID int64
	next      models.Session
	err       error
}

type defaultSetMsg struct {
	err error
}

type entryCopiedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type entryRestoredMsg struct {
	err error
}

type historyClearedMsg struct {
	err error
}

type monitorEventMsg struct {
	event service.MonitorEvent
}

type clearStatusMsg struct{}
