// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// LoginScope is the OAuth2 scope string the backend expects on login.
const LoginScope = "noivo convidado"

// LoginRequest carries the form fields of POST /auth/login.
type LoginRequest struct {
	Username string
	Password string
}

// FormData returns the request as form fields, scope included.
func (r LoginRequest) FormData() map[string]string {
	return map[string]string{
		"username": r.Username,
		"password": r.Password,
		"scope":    LoginScope,
	}
}

// LoginResponse is the JSON body returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// ErrorResponse is the JSON error body returned by the backend.
//
// Detail is usually a string. Validation failures carry a list of objects
// instead; the first "msg" of that list is used.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

// Message returns the human readable detail, or "" when none can be found.
func (e ErrorResponse) Message() string {
	if len(e.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &items); err == nil {
		for _, it := range items {
			if msg := strings.TrimSpace(it.Msg); msg != "" {
				return msg
			}
		}
	}

	return ""
}
