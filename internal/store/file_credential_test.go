// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/guest-list-admin/models"
)

func TestFileCredentialStore_LoadMissing(t *testing.T) {
	s := NewFileCredentialStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestFileCredentialStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	s := NewFileCredentialStore(path)

	require.NoError(t, s.Save(ctx, models.NewCredential("tok-1")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"authToken":"tok-1"}`, string(data))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.AccessToken)

	require.NoError(t, s.Save(ctx, models.NewCredential("tok-2")))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.AccessToken)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	// clearing twice is fine
	assert.NoError(t, s.Clear(ctx))
}

func TestFileCredentialStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileCredentialStore(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
}

func TestFileCredentialStore_OtherKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"x"}`), 0o600))

	_, err := NewFileCredentialStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}
