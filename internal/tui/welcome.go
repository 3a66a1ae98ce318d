package tui

import (
	"context"

	"github.com/MKhiriev/clip-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the entry page of the authentication flow. On Init it
// silently tries to resume the account from the stored remember-me token;
// a missing, expired or tampered token falls through to the menu without
// showing an error.
type WelcomeModel struct {
	ctx  context.Context
	auth service.AuthService
}

func NewWelcomeModel(ctx context.Context, auth service.AuthService) *WelcomeModel {
	return &WelcomeModel{ctx: ctx, auth: auth}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return m.cmdRestoreSession()
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Successful results are consumed by the root model before they reach
	// this page, so a LoginResult here always carries an error.
	if _, ok := msg.(LoginResult); ok {
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	return renderPage("CLIPKEEPER", "Восстановление сессии...", "")
}

func (m *WelcomeModel) cmdRestoreSession() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.RestoreSession(ctx)
		return LoginResult{Err: err, Username: user.UserName, User: user}
	}
}
