// Package utils provides general-purpose helper utilities used across the
// guest list client: the resty HTTP client wrapper, request id generation,
// JWT helpers and JSON response writing for HTTP handlers.
package utils
