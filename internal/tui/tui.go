// Package tui implements the terminal interface of the forum client on top of
// bubbletea. A single appModel acts as a switchboard: every screen is a plain
// struct with its own view, all state mutation happens in Update, and network
// work runs in tea.Cmd goroutines that report back through typed messages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Unikyri/forohub-tui/internal/logger"
	"github.com/Unikyri/forohub-tui/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
	pageSize int
	logger   *logger.Logger
}

func New(services *service.Services, pageSize int, logger *logger.Logger) *TUI {
	return &TUI{services: services, pageSize: pageSize, logger: logger}
}

// LoginFlow runs the welcome/login/register screens until the user is
// authenticated. Returns [ErrUserQuit] if the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.services, t.pageSize)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}
	return nil
}

// MainLoop runs the forum screens until the user quits or logs out. The
// logout return distinguishes "start over at the login flow" from "exit the
// program".
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, t.pageSize)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
