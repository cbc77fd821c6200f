// Package config provides configuration loading, merging, and validation
// facilities for the guest list client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Variables from an optional .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry point is [GetClientConfig].
package config
