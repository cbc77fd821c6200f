package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/client"
	"github.com/MKhiriev/guest-list-admin/internal/config"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/service"
	"github.com/MKhiriev/guest-list-admin/internal/store"
	"github.com/MKhiriev/guest-list-admin/internal/tui"
	"github.com/MKhiriev/guest-list-admin/internal/validators"
	"github.com/MKhiriev/guest-list-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	bootLog := logger.NewLogger("guestadmin")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	// stdout belongs to the ui from here on
	log := logger.NewClientLogger("guestadmin", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.GetChildLogger())
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log.GetChildLogger())
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create credential storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages.Credentials, serverAdapter, validators.NewGuestValidator(), log)

	ui, err := tui.New(services, buildInfo, log.GetChildLogger())
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		storages.Close()
		os.Exit(1)
	}
}
