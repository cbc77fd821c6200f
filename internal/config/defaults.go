package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultBackendURL     = "http://localhost:8000"
	defaultRequestTimeout = 15 * time.Second
	defaultLogLevel       = "info"

	appDirName = "guestadmin"
)

// defaultConfig is the lowest layer of the merge. The storage DSN depends on
// the selected driver and is filled in by newClientConfig.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BackendURL:     defaultBackendURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: Storage{
			Driver: StorageDriverSQLite,
		},
		Log: Log{
			Level: defaultLogLevel,
			File:  dataPath("guestadmin.log"),
		},
	}
}

func defaultDSN(driver string) string {
	if driver == StorageDriverFile {
		return dataPath("session.json")
	}
	return dataPath("guestadmin.db")
}

// dataPath places name under the per-user config directory, falling back to
// the working directory when it cannot be resolved.
func dataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return name
	}
	return filepath.Join(dir, appDirName, name)
}
