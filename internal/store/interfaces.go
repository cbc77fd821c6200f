// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the session credential on the client device.
//
// Exactly one credential is kept, under the fixed name
// [models.CredentialName]. Two backends implement [CredentialStore]: an
// SQLite database migrated with goose, and a plain JSON file.
package store

import (
	"context"

	"github.com/MKhiriev/guest-list-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore is durable storage for the single session credential.
type CredentialStore interface {
	// Load returns the persisted credential. It returns
	// [ErrCredentialNotFound] when nothing has been stored.
	Load(ctx context.Context) (models.Credential, error)

	// Save replaces the persisted credential.
	Save(ctx context.Context, credential models.Credential) error

	// Clear erases the persisted credential. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
