package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/folio/pkg/app"
)

// runTUI runs the interactive page until the user quits or a signal
// arrives.
func runTUI(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := openSession(os.Stdout)
	if err != nil {
		return err
	}
	defer s.Close()

	zones := zone.New()
	defer zones.Close()

	o := s.options(true)
	o.Zones = zones
	o.Bell = os.Stderr
	model := app.New(o)
	defer model.Shutdown()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			s.log.Info("received shutdown signal")
			return nil
		}
		s.log.Error("TUI error", "error", err)
		return err
	}
	return nil
}
