package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/guest-list-admin/internal/config"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// Credentials persists the session credential.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages initialises the credential store selected by cfg.Driver.
//
// For [config.StorageDriverSQLite] it opens (creating if needed) the database
// file at cfg.DSN and runs pending migrations. For [config.StorageDriverFile]
// it only records the path; the file is written on the first save.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.StorageDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{
			Credentials: NewSQLiteCredentialRepository(db, logger),
			db:          db,
		}, nil

	case config.StorageDriverFile:
		return &ClientStorages{Credentials: NewFileCredentialStore(cfg.DSN)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
