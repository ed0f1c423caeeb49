package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/client"
	"github.com/MKhiriev/go-spine-client/internal/config"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/internal/store"
	"github.com/MKhiriev/go-spine-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-spine-client", logger.FileOptions{
		Path:  cfg.Log.File,
		Level: cfg.Log.Level,
	})

	appInfo, err := service.NewAppInfoService(buildInfo(), log)
	if err != nil {
		fatal(log, err, "create app info service")
	}

	analysisAdapter, err := adapter.NewHTTPAnalysisAdapter(cfg.Adapter, appInfo.UserAgent(), log)
	if err != nil {
		fatal(log, err, "create analysis adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		fatal(log, err, "create client storages")
	}

	services := service.NewClientServices(storages, analysisAdapter, appInfo, log)

	app, err := client.NewApp(cfg, services, os.Stdout, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		if cfg.App.InputFile == "" {
			reportStartupError(os.Stderr, "client run error", err)
		}
		stop()
		os.Exit(1)
	}
}

// fatal reports a startup failure on stderr and in the log, then exits.
func fatal(log *logger.Logger, err error, msg string) {
	reportStartupError(os.Stderr, msg, err)
	log.Fatal().Err(err).Msg(msg)
}

func reportStartupError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "%s: %v\n", msg, err)
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
