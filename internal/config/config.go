// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the client.
// It is populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend location and request timeout.
	Adapter Adapter

	// Storage selects where the session credential is persisted.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log file location and verbosity.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter configures the HTTP transport to the guest list backend.
type Adapter struct {
	// BackendURL is the base URL of the backend, e.g. http://localhost:8000.
	BackendURL string `env:"BACKEND_URL"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage configures the credential store.
type Storage struct {
	// Driver is either [StorageDriverSQLite] or [StorageDriverFile].
	Driver string `env:"DRIVER"`

	// DSN is the SQLite database file or the JSON session file path,
	// depending on Driver.
	DSN string `env:"DSN"`
}

// Log configures the client logger.
type Log struct {
	Level string `env:"LEVEL"`
	File  string `env:"FILE"`
}

// Supported credential store drivers.
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverFile   = "file"
)
