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

func newTestRoot(t *testing.T, ctrl *gomock.Controller, startPage string) RootModel {
	t.Helper()

	mockAuth := mock.NewMockAuthService(ctrl)
	ctx := context.Background()

	pages := map[string]tea.Model{
		"welcome":  NewWelcomeModel(ctx, mockAuth),
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, mockAuth),
		"register": NewRegisterModel(ctx, mockAuth),
	}

	return NewRootModel(pages, startPage, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
}

func TestRootModel_NavigateSwitchesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "menu")

	updated, _ := root.Update(NavigateTo{Page: "login"})

	result := updated.(RootModel)
	_, ok := result.current.(*LoginModel)
	assert.True(t, ok, "после NavigateTo активна страница входа")
}

func TestRootModel_NavigateUnknownPageIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "menu")

	updated, cmd := root.Update(NavigateTo{Page: "nope"})
	assert.Nil(t, cmd)

	result := updated.(RootModel)
	_, ok := result.current.(*MenuModel)
	assert.True(t, ok, "неизвестная страница не меняет текущую")
}

func TestRootModel_NavigatePayloadReplayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "register")

	notice := RegisterSuccessNotice{Username: "bob"}
	updated, cmd := root.Update(NavigateTo{Page: "menu", Payload: notice})
	require.NotNil(t, cmd)

	result := updated.(RootModel)
	_, ok := result.current.(*MenuModel)
	require.True(t, ok)

	// payload доставляется уже новой странице
	assert.Equal(t, notice, cmd())
}

func TestRootModel_SuccessfulLoginFinishesFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "login")
	user := models.User{ID: 42, UserName: "alice"}

	updated, cmd := root.Update(LoginResult{Username: "alice", User: user})
	require.NotNil(t, cmd)

	result := updated.(RootModel)
	assert.Equal(t, user, result.resultUser)
	assert.False(t, result.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_FailedLoginFallsThroughToPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "login")

	updated, _ := root.Update(LoginResult{Err: service.ErrInvalidCredentials})

	result := updated.(RootModel)
	login, ok := result.current.(*LoginModel)
	require.True(t, ok)
	assert.Equal(t, "Неверный логин или пароль", login.errMsg)
	assert.Zero(t, result.resultUser.ID, "ошибка входа не завершает поток")
}

func TestRootModel_CtrlCQuitsByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "menu")

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	result := updated.(RootModel)
	assert.True(t, result.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "menu")

	updated, _ := root.Update(pressRunes("v"))
	result := updated.(RootModel)
	require.True(t, result.showBuildInfo)
	assert.Contains(t, result.View(), "1.0.0")

	updated, _ = result.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result = updated.(RootModel)
	assert.False(t, result.showBuildInfo)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := newTestRoot(t, ctrl, "login")

	updated, _ := root.Update(pressRunes("v"))
	result := updated.(RootModel)
	assert.False(t, result.showBuildInfo, "окно версии доступно только из меню")
}
