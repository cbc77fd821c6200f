// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the client view before it is used at startup. All failing
// groups are reported together.
func (cfg *ClientConfig) validate() error {
	var errs []error

	if err := validateBackendURL(cfg.Adapter.BackendURL); err != nil || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: url=%q timeout=%s", ErrInvalidAdapterConfigs, cfg.Adapter.BackendURL, cfg.Adapter.RequestTimeout))
	}

	switch cfg.Storage.Driver {
	case StorageDriverSQLite, StorageDriverFile:
		if cfg.Storage.DSN == "" || isInMemoryDSN(cfg.Storage.DSN) {
			errs = append(errs, fmt.Errorf("%w: dsn=%q", ErrInvalidStorageConfigs, cfg.Storage.DSN))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}

func validateBackendURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("empty backend url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return errors.New("backend url must include host")
	}
	return nil
}

// isInMemoryDSN matches the SQLite in-memory forms: ":memory:",
// "file::memory:" and any DSN with mode=memory in its query.
func isInMemoryDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") {
		return true
	}

	_, rawQuery, found := strings.Cut(dsn, "?")
	if !found {
		return false
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return query.Get("mode") == "memory"
}
