// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// guest list backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP details: paths, methods, encodings and the bearer header. The
// package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-success responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401). The server supplied "detail" message is available through
// [errors.As] with an [*APIError]. Connection failures wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/guest-list-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the guest list backend. The
// adapter holds no session state: every authenticated call receives the
// credential explicitly.
type ServerAdapter interface {
	// Login submits the identifier and secret as form fields to
	// POST /auth/login together with the fixed scope, and returns the access
	// token from the JSON response. A response without a token yields
	// [ErrMissingAccessToken].
	Login(ctx context.Context, request models.LoginRequest) (models.Credential, error)

	// ListGuests fetches the whole collection with GET /convidados, in the
	// order returned by the server.
	ListGuests(ctx context.Context, credential models.Credential) ([]models.Guest, error)

	// CreateGuest sends the guest without identifier to POST /convidados/.
	CreateGuest(ctx context.Context, credential models.Credential, guest models.Guest) error

	// UpdateGuest sends the full record to PUT /convidados/{id}.
	UpdateGuest(ctx context.Context, credential models.Credential, guest models.Guest) error

	// DeleteGuest removes the guest with DELETE /convidados/{id}.
	DeleteGuest(ctx context.Context, credential models.Credential, id models.GuestID) error
}
