// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/app"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/validators"
	"github.com/MKhiriev/guest-list-admin/models"
)

type guestService struct {
	session   SessionService
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewGuestService(session SessionService, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) GuestService {
	return &guestService{
		session:   session,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (g *guestService) List(ctx context.Context) ([]models.Guest, error) {
	credential, err := g.credential(ErrFetch)
	if err != nil {
		return nil, err
	}

	guests, err := g.adapter.ListGuests(ctx, credential)
	if err != nil {
		g.logger.Err(err).Str("func", "guestService.List").Msg("error fetching guests")
		return nil, g.fail(ctx, listFailure, credential, err)
	}

	g.logger.Debug().Str("func", "guestService.List").Int("count", len(guests)).Msg("guests fetched")
	return guests, nil
}

func (g *guestService) Save(ctx context.Context, guest models.Guest) error {
	guest.Name = strings.TrimSpace(guest.Name)
	if guest.Attendance == "" {
		guest.Attendance = models.AttendanceUnconfirmed
	}

	if err := g.validator.Validate(ctx, guest); err != nil {
		return newError(ErrSave, validationMessage(err), fmt.Errorf("%w: %w", ErrValidation, err))
	}

	credential, err := g.credential(ErrSave)
	if err != nil {
		return err
	}

	op := "create"
	if guest.IsNew() {
		err = g.adapter.CreateGuest(ctx, credential, guest)
	} else {
		op = "update"
		err = g.adapter.UpdateGuest(ctx, credential, guest)
	}
	if err != nil {
		g.logger.Err(err).Str("func", "guestService.Save").Str("op", op).Msg("error saving guest")
		return g.fail(ctx, saveFailure, credential, err)
	}

	g.logger.Info().Str("func", "guestService.Save").Str("op", op).Str("guest_id", guest.ID.String()).Msg("guest saved")
	return nil
}

func (g *guestService) Delete(ctx context.Context, guest models.Guest, confirm models.ConfirmFunc) error {
	if guest.ID.IsZero() {
		return newError(ErrDelete, app.MsgGuestWithoutID, fmt.Errorf("%w: %w", ErrValidation, validators.ErrMissingGuestID))
	}

	if confirm == nil || !confirm(guest) {
		g.logger.Debug().Str("func", "guestService.Delete").Str("guest_id", guest.ID.String()).Msg("delete cancelled")
		return newError(ErrDeleteNotConfirmed, app.MsgDeleteCancelled, nil)
	}

	credential, err := g.credential(ErrDelete)
	if err != nil {
		return err
	}

	if err = g.adapter.DeleteGuest(ctx, credential, guest.ID); err != nil {
		g.logger.Err(err).Str("func", "guestService.Delete").Str("guest_id", guest.ID.String()).Msg("error deleting guest")
		return g.fail(ctx, deleteFailure, credential, err)
	}

	g.logger.Info().Str("func", "guestService.Delete").Str("guest_id", guest.ID.String()).Msg("guest deleted")
	return nil
}

func (g *guestService) credential(kind error) (models.Credential, error) {
	credential, ok := g.session.Credential()
	if !ok {
		return models.Credential{}, newError(kind, app.MsgNotAuthenticated, ErrNotAuthenticated)
	}
	return credential, nil
}

// fail maps err and ends the session when the backend rejected credential.
func (g *guestService) fail(ctx context.Context, f failure, credential models.Credential, err error) error {
	mapped := mapAdapterError(f, err)
	if errors.Is(mapped, ErrSessionExpired) {
		if invErr := g.session.Invalidate(ctx, credential); invErr != nil {
			g.logger.Err(invErr).Str("func", "guestService.fail").Msg("error invalidating session")
		}
	}
	return mapped
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyGuestName):
		return app.MsgEmptyGuestName
	case errors.Is(err, validators.ErrUnknownAttendance):
		return app.MsgUnknownAttendance
	case errors.Is(err, validators.ErrMissingGuestID):
		return app.MsgGuestWithoutID
	default:
		return app.MsgSaveGuestFailed
	}
}
