package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-u backend base URL (e.g. http://localhost:8000)
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-storage-driver credential store driver: sqlite or file
//	-storage-dsn database file or session file path
//	-log-level zerolog level name
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var backendURL string
	var requestTimeout time.Duration
	var storageDriver, storageDSN string
	var logLevel, logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("guestadmin", flag.ContinueOnError)
	fs.StringVar(&backendURL, "u", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Credential store driver: sqlite or file")
	fs.StringVar(&storageDSN, "storage-dsn", "", "Credential store path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BackendURL:     backendURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    storageDSN,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
