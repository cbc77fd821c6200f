// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/models"
)

const credentialsTable = "credentials"

// sqliteCredentialRepository keeps the credential as a single row of the
// "credentials" table keyed by [models.CredentialName].
type sqliteCredentialRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteCredentialRepository constructs a [CredentialStore] on top of an
// already migrated database.
func NewSQLiteCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating sqlite credential repository")
	return &sqliteCredentialRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sqliteCredentialRepository) Load(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("token").
		From(credentialsTable).
		Where(sq.Eq{"name": models.CredentialName}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqliteCredentialRepository.Load").Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	credential := models.NewCredential(token)
	if credential.IsZero() {
		return models.Credential{}, ErrCredentialNotFound
	}
	return credential, nil
}

func (r *sqliteCredentialRepository) Save(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(credentialsTable).
		Columns("name", "token", "updated_at").
		Values(models.CredentialName, credential.AccessToken, r.now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteCredentialRepository.Save").Msg("error upserting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sqliteCredentialRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(credentialsTable).
		Where(sq.Eq{"name": models.CredentialName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteCredentialRepository.Clear").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
