package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/service"
)

var ErrNilDependency = errors.New("client: nil dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the persisted session and runs the UI. A credential that
// cannot be read is logged and the user starts on the login screen.
func (a *App) Run(ctx context.Context) error {
	_, found, err := a.services.Session.Restore(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error restoring session, starting unauthenticated")
	} else {
		a.logger.Info().Str("func", "App.Run").Bool("restored", found).Msg("starting ui")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("ui closed")
	return nil
}
