// Package tui is the interactive terminal screen of the client.
//
// A bubbletea program owns the terminal. Upload cycles run in commands and
// reach the screen through [Surface], which queues every change as a message
// so the program applies them in the order the cycle made them.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of the screen.
type Deps struct {
	Uploads Uploader
	Surface *Surface
	Export  service.ExportService
	AppInfo service.AppInfoService
	Logger  *logger.Logger
}

// Options tune the screen.
type Options struct {
	// StartDir is where the file picker opens. Empty means the working
	// directory.
	StartDir string

	// ServerAddress is shown on the about screen.
	ServerAddress string
}

type TUI struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) (*TUI, error) {
	if deps.Uploads == nil || deps.Surface == nil || deps.Export == nil || deps.AppInfo == nil {
		return nil, ErrMissingDependency
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	return &TUI{deps: deps, opts: opts}, nil
}

// Run shows the screen until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(ctx, t.deps, t.opts), tea.WithAltScreen(), tea.WithContext(ctx))
	t.deps.Surface.Attach(ctx, p)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
