package client

import (
	"context"
	"errors"

	"github.com/Unikyri/forohub-tui/internal/config"
	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/service"
	"github.com/Unikyri/forohub-tui/internal/tui"
	"github.com/Unikyri/forohub-tui/internal/workers"
)

type App struct {
	services   *service.Services
	tui        *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{services: services, tui: ui, workersCfg: workersCfg, logger: log}, nil
}

// Run drives the whole session lifecycle: restore or acquire a session,
// keep the caches fresh in the background, hand the terminal to the main
// loop, and start over on logout.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		if _, ok := a.services.Auth.RestoreSession(ctx); !ok {
			if err := a.tui.LoginFlow(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		refresher := workers.NewRefreshWorker(
			ctx, a.services.Topics, a.services.Stats, a.workersCfg.RefreshInterval, a.logger)
		workers.NewWorkers(refresher).Run()

		logout, err := a.tui.MainLoop(ctx)
		refresher.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := a.services.Auth.Logout(ctx); err != nil {
			a.logger.Warn().
				Str("func", "client.App.Run").
				Err(err).
				Msg("logout cleanup failed")
		}
	}
}
