package config

import (
	"fmt"
	"time"
)

// DotEnvFile is the optional file whose variables are exported before the
// environment is read.
const DotEnvFile = ".env"

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BackendURL is the base URL every request path is resolved against.
	BackendURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the credential store settings.
type ClientStorage struct {
	// Driver is [StorageDriverSQLite] or [StorageDriverFile].
	Driver string
	// DSN is the SQLite file path or the JSON session file path.
	DSN string
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the backend URL and timeouts.
	Adapter ClientAdapter
	// Storage contains credential store settings.
	Storage ClientStorage
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client configuration from all
// sources. args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BackendURL:     cfg.Adapter.BackendURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DSN:    cfg.Storage.DSN,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}

	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = defaultDSN(clientCfg.Storage.Driver)
	}

	return clientCfg, clientCfg.validate()
}
