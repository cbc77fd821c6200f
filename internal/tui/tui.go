// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the guest list
// administrator: a login screen and a dashboard with the guest collection,
// the add/edit modal and the removal confirmation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/service"
	"github.com/MKhiriev/guest-list-admin/models"
)

var ErrNilServices = errors.New("tui: services are required")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.Session == nil || services.Guests == nil {
		return nil, ErrNilServices
	}
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log, options: options}, nil
}

// Run blocks until the user quits or ctx is cancelled. The first screen
// follows the current session state.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.logger)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(model, options...)

	cancel := t.services.Session.Subscribe(func(change models.SessionChange) {
		t.logger.Debug().
			Str("state", change.State.String()).
			Str("reason", string(change.Reason)).
			Msg("session changed")
		program.Send(sessionChangedMsg{change: change})
	})
	defer cancel()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
