// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildValueUnknown replaces build metadata that was not injected at link
// time.
const BuildValueUnknown = "N/A"

// AppBuildInfo is the version metadata linked into the guestadmin binary
// with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// ShortCommit is the first seven characters of the commit hash.
func (a AppBuildInfo) ShortCommit() string {
	commit := orUnknown(a.Commit)
	if commit == BuildValueUnknown || len(commit) <= 7 {
		return commit
	}
	return commit[:7]
}

func (a AppBuildInfo) String() string {
	return "guestadmin " + orUnknown(a.Version) + " (" + a.ShortCommit() + ", " + orUnknown(a.Date) + ")"
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return BuildValueUnknown
	}
	return v
}
