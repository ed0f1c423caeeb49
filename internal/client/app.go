package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-spine-client/internal/config"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/render"
	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/internal/tui"
	"github.com/MKhiriev/go-spine-client/internal/upload"
	"github.com/MKhiriev/go-spine-client/internal/utils"
	"github.com/MKhiriev/go-spine-client/internal/workers"
	"github.com/MKhiriev/go-spine-client/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	out      io.Writer

	logger *logger.Logger
}

// NewApp returns an App writing one-shot output to out.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, out io.Writer, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if services == nil {
		return nil, ErrNilServices
	}

	return &App{cfg: cfg, services: services, out: out, logger: logger}, nil
}

// Run analyses cfg.App.InputFile when it is set and returns the upload
// failure. Otherwise it runs the terminal UI.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.App.InputFile != "" {
		return a.runOnce(ctx, a.cfg.App.InputFile)
	}
	return a.runInteractive(ctx)
}

func (a *App) runOnce(ctx context.Context, path string) error {
	surface := render.NewTextSurface(a.out)
	uploads := upload.NewClient(a.services.AnalysisService, surface, utils.NewUUIDGenerator(), a.logger)

	a.logger.Info().Str("file", path).Msg("one-shot analysis")

	_, err := uploads.SelectFile(ctx, models.FileEvent{Source: models.SourceArgument, Paths: []string{path}})
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	if resp, ok := uploads.Last(); ok {
		surface.WriteDetails(resp)
	}
	return nil
}

func (a *App) runInteractive(ctx context.Context) error {
	surface := tui.NewSurface()
	uploads := upload.NewClient(a.services.AnalysisService, surface, utils.NewUUIDGenerator(), a.logger)

	ui, err := tui.New(tui.Deps{
		Uploads: uploads,
		Surface: surface,
		Export:  a.services.ExportService,
		AppInfo: a.services.AppInfoService,
		Logger:  a.logger,
	}, tui.Options{
		ServerAddress: a.cfg.Adapter.HTTPAddress,
	})
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bg := workers.NewWorkers(
		workers.NewHealthWorker(a.services.HealthJob, a.cfg.Workers.HealthInterval, surface.ReportHealth),
	)
	bg.Run(ctx)
	defer bg.Stop()

	a.logger.Info().Str("server", a.cfg.Adapter.HTTPAddress).Msg("interactive session started")

	if err = ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
