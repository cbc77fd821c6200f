// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/store"
	"github.com/MKhiriev/guest-list-admin/internal/validators"
)

// ClientServices groups the use cases consumed by the terminal UI.
type ClientServices struct {
	Session SessionService
	Guests  GuestService
}

// NewClientServices wires a session manager over credentials and a guest
// client that borrows its credential.
func NewClientServices(credentials store.CredentialStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) *ClientServices {
	session := NewSessionService(credentials, serverAdapter, validator, logger.GetChildLogger())
	return &ClientServices{
		Session: session,
		Guests:  NewGuestService(session, serverAdapter, validator, logger.GetChildLogger()),
	}
}
