package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/service/mock"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/models"
)

// pressRunes — клавиша-литера ("a", "/", "D") как tea.KeyMsg
func pressRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoginModel_Submit_CallsAuthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockAuthService(ctrl)
	ctx := context.Background()

	m := NewLoginModel(ctx, mockAuth)
	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("secret123")

	user := models.User{ID: 42, UserName: "alice"}
	mockAuth.EXPECT().
		Login(ctx, models.Credentials{UserName: "alice", Password: "secret123"}).
		Return(user, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, updated.(*LoginModel).submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.Equal(t, user, result.User)
	assert.Equal(t, "alice", result.Username)
}

func TestLoginModel_RememberToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockAuthService(ctrl)
	ctx := context.Background()

	m := NewLoginModel(ctx, mockAuth)
	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("secret123")

	// tab до строки «Запомнить», пробел включает флажок
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, rememberRow, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, m.remember)

	mockAuth.EXPECT().
		Login(ctx, models.Credentials{UserName: "alice", Password: "secret123", Remember: true}).
		Return(models.User{ID: 42}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
}

func TestLoginModel_SpaceOutsideToggleGoesToInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.False(t, m.remember, "пробел в текстовом поле не трогает флажок")
	assert.Equal(t, " ", m.inputs[0].Value())
}

func TestLoginModel_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", updated.(*LoginModel).errMsg)
}

func TestLoginModel_FailedResultShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))
	m.submitting = true

	updated, _ := m.Update(LoginResult{Err: service.ErrInvalidCredentials})

	login := updated.(*LoginModel)
	assert.False(t, login.submitting)
	assert.Equal(t, "Неверный логин или пароль", login.errMsg)
}

func TestLoginModel_EscReturnsToMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "menu", nav.Page)
}

func TestLoginModel_FocusCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(ctrl))

	require.Equal(t, 0, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, rememberRow, m.focus)

	// полный круг возвращает фокус на логин
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, rememberRow, m.focus)
}
