// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds boundary validation of values entered by the
// user before they are turned into backend requests.
//
// A Validator checks a whole value or, when field names are given, only those
// fields. Services call it before building a request so that invalid input
// never reaches the network.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
