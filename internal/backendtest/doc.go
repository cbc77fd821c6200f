// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backendtest provides an in-memory guest list backend served by
// httptest for adapter and end-to-end tests.
//
// It speaks the same wire protocol as the real backend: an OAuth2 password
// login at /auth/login returning a signed JWT, and bearer-protected CRUD on
// /convidados. Errors are returned as {"detail": ...} bodies.
package backendtest
