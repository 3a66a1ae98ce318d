package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/tui"
	"github.com/MKhiriev/clip-keeper/internal/utils"
	"github.com/MKhiriev/clip-keeper/internal/workers"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	runner   *workers.Runner
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client app: services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		runner:   workers.NewRunner(log, services.Monitor),
		log:      log,
	}, nil
}

// Run drives the whole client lifecycle: authenticate, pick the startup
// session, capture in the background while the history browser runs, and
// start over when the user switches accounts.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
		a.log.Info().Int64("user_id", user.ID).Msg("user authenticated")

		// дальше все операции логируются с идентификатором пользователя
		userCtx := utils.WithUserScope(ctx, a.log, user.ID)

		if _, err = a.services.SessionService.EnsureDefault(userCtx, user.ID); err != nil {
			return fmt.Errorf("ensure default session: %w", err)
		}

		startup, err := a.services.SessionService.PickStartup(userCtx, user.ID)
		if err != nil {
			return fmt.Errorf("pick startup session: %w", err)
		}

		a.services.Monitor.SetSession(startup.ID)
		if err = a.runner.Start(userCtx); err != nil {
			return fmt.Errorf("start background jobs: %w", err)
		}

		// каждая итерация главного цикла получает свой контекст, чтобы
		// его отмена освободила команды, ждущие событий монитора
		loopCtx, cancel := context.WithCancel(userCtx)
		logout, loopErr := a.tui.MainLoop(loopCtx, user, startup)
		cancel()
		a.runner.Stop()

		if loopErr != nil {
			return fmt.Errorf("main loop: %w", loopErr)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(userCtx); err != nil {
			a.log.Error().Err(err).Msg("logout error")
		}
	}
}
