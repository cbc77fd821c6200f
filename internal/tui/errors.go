// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/guest-list-admin/internal/service"
)

// errorText returns the message to show for err. Cancellations yield ""
// since they only happen while the program is shutting down.
func errorText(err error, fallback string) string {
	if err == nil || errors.Is(err, context.Canceled) {
		return ""
	}
	return service.UserMessage(err, fallback)
}
