// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client use cases on top of the transport
// adapter and the credential store: the Session Manager ([SessionService])
// and the Guest Data Client ([GuestService]).
//
// Failures are returned as [*Error] values. Their Error method yields the
// message meant for the user; errors.Is matches both the failure kind
// (ErrFetch, ErrSave, ...) and the underlying cause.
package service

import (
	"context"

	"github.com/MKhiriev/guest-list-admin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionService owns the lifecycle of the single session credential.
type SessionService interface {
	// Restore loads the persisted credential, if any, and makes it active.
	// found is false when nothing was persisted.
	Restore(ctx context.Context) (credential models.Credential, found bool, err error)

	// Login authenticates against the backend, persists the returned token
	// and makes it the active credential. A failed login never changes the
	// session.
	Login(ctx context.Context, identifier, secret string) (models.Credential, error)

	// Logout discards the active credential and erases the persisted copy.
	// The session always ends unauthenticated; the returned error only
	// reports a failure to erase the persisted copy.
	Logout(ctx context.Context) error

	// Invalidate discards the session after the backend rejected rejected.
	// It is a no-op when the active credential is no longer rejected, e.g.
	// the user already logged in again.
	Invalidate(ctx context.Context, rejected models.Credential) error

	// Credential returns the active credential.
	Credential() (models.Credential, bool)

	// State reports whether a credential is active.
	State() models.SessionState

	// Subscribe registers fn to be called after every state change. The
	// returned function removes the registration.
	Subscribe(fn func(models.SessionChange)) (cancel func())
}

// GuestService performs CRUD operations on the guest collection with the
// credential of a [SessionService]. A 401 from any call invalidates the
// session.
type GuestService interface {
	// List fetches the whole collection in server order.
	List(ctx context.Context) ([]models.Guest, error)

	// Save creates the guest when it has no identifier and updates it
	// otherwise. Names are trimmed and must not be blank; an empty
	// attendance defaults to unconfirmed.
	Save(ctx context.Context, guest models.Guest) error

	// Delete removes the guest after confirm returned true. A nil confirm
	// counts as a refusal.
	Delete(ctx context.Context, guest models.Guest, confirm models.ConfirmFunc) error
}
