// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/app"
)

// failure describes how an adapter error of one operation becomes an [*Error].
type failure struct {
	kind     error
	fallback string
	// useDetail shows the server supplied detail instead of fallback when
	// present.
	useDetail bool
}

var (
	loginFailure  = failure{kind: ErrAuthentication, fallback: app.MsgLoginFailed, useDetail: true}
	listFailure   = failure{kind: ErrFetch, fallback: app.MsgFetchGuestsFailed}
	saveFailure   = failure{kind: ErrSave, fallback: app.MsgSaveGuestFailed, useDetail: true}
	deleteFailure = failure{kind: ErrDelete, fallback: app.MsgDeleteGuestFailed, useDetail: true}
)

// mapAdapterError translates the adapter's transport error into a service error
func mapAdapterError(f failure, err error) *Error {
	switch {
	case errors.Is(err, adapter.ErrTransport):
		if errors.Is(err, context.Canceled) {
			return newError(f.kind, f.fallback, err)
		}
		return newError(f.kind, app.MsgServerUnavailable, fmt.Errorf("%w: %w", ErrNetwork, err))

	case errors.Is(err, adapter.ErrUnauthorized) && f.kind != ErrAuthentication:
		return newError(f.kind, app.MsgSessionExpired, fmt.Errorf("%w: %w", ErrSessionExpired, err))
	}

	msg := f.fallback
	if f.useDetail {
		if detail := adapter.DetailOf(err); detail != "" {
			msg = detail
		}
	}
	return newError(f.kind, msg, err)
}
