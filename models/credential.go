// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialName is the fixed key the credential is persisted under.
const CredentialName = "authToken"

// Credential is the bearer token that represents an authenticated session.
//
// The token is opaque to the client. When it happens to be a JWT its claims
// are decoded without verification, for display only; they never decide
// whether the session is valid, the server does.
type Credential struct {
	AccessToken string
	TokenType   string
}

// NewCredential builds a [Credential] from a raw token, trimming whitespace.
func NewCredential(token string) Credential {
	return Credential{AccessToken: strings.TrimSpace(token), TokenType: "bearer"}
}

// IsZero reports whether no token is held.
func (c Credential) IsZero() bool {
	return c.AccessToken == ""
}

// AuthorizationHeader returns the value for the Authorization header.
func (c Credential) AuthorizationHeader() string {
	return "Bearer " + c.AccessToken
}

// Subject returns the "sub" claim of a JWT token, or "" for opaque tokens.
func (c Credential) Subject() string {
	claims, ok := c.claims()
	if !ok {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// ExpiresAt returns the "exp" claim of a JWT token. ok is false for opaque
// tokens and tokens without expiry.
func (c Credential) ExpiresAt() (time.Time, bool) {
	claims, ok := c.claims()
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (c Credential) claims() (jwt.MapClaims, bool) {
	if c.IsZero() {
		return nil, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
