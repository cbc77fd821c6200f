// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Attendance is the RSVP status of a guest as it travels over the wire.
type Attendance string

const (
	// AttendanceUnconfirmed is the default status of a newly added guest.
	AttendanceUnconfirmed Attendance = "nao_confirmado"
	// AttendanceGoing marks a guest that confirmed presence.
	AttendanceGoing Attendance = "vai"
	// AttendanceNotGoing marks a guest that declined.
	AttendanceNotGoing Attendance = "nao_vai"
)

// Attendances lists every known status in the order the form cycles through
// them.
var Attendances = []Attendance{AttendanceUnconfirmed, AttendanceGoing, AttendanceNotGoing}

// Valid reports whether a is one of the known statuses.
func (a Attendance) Valid() bool {
	switch a {
	case AttendanceUnconfirmed, AttendanceGoing, AttendanceNotGoing:
		return true
	}
	return false
}

// Badge returns the short label shown next to a guest in the list.
func (a Attendance) Badge() string {
	switch a {
	case AttendanceGoing:
		return "Confirmado"
	case AttendanceNotGoing:
		return "Não virá"
	default:
		return "Pendente"
	}
}

// Label returns the option text used by the guest form selector.
func (a Attendance) Label() string {
	switch a {
	case AttendanceGoing:
		return "Vai"
	case AttendanceNotGoing:
		return "Não Vai"
	default:
		return "Não Confirmado"
	}
}

// GuestID is the server-assigned guest identifier. The backend may send it as
// a JSON number or a JSON string; the text and the shape it arrived in are
// both kept so that it is written back exactly as received.
type GuestID struct {
	value   string
	numeric bool
}

// NumericGuestID is an identifier carried as a JSON number.
func NumericGuestID(digits string) GuestID {
	return GuestID{value: digits, numeric: true}
}

// TextGuestID is an identifier carried as a JSON string.
func TextGuestID(s string) GuestID {
	return GuestID{value: s}
}

// IsZero reports whether the identifier was never assigned. Zero is a valid
// server id and does not count as unassigned.
func (id GuestID) IsZero() bool {
	return strings.TrimSpace(id.value) == ""
}

// IsNumeric reports whether the identifier travels as a JSON number.
func (id GuestID) IsNumeric() bool {
	return id.numeric
}

func (id GuestID) String() string {
	return id.value
}

// MarshalJSON writes the identifier in the shape it was received in. A
// numeric id whose text is not a JSON number falls back to a string.
func (id GuestID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric && isJSONNumber(id.value) {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *GuestID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = GuestID{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = TextGuestID(s)
		return nil
	}

	if !isJSONNumber(string(b)) {
		return fmt.Errorf("guest id must be a number or a string, got %s", b)
	}
	*id = NumericGuestID(string(b))
	return nil
}

func isJSONNumber(v string) bool {
	if v == "" || v[0] == '"' {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(v), &n) == nil
}

// Guest is a single entry of the wedding guest list.
type Guest struct {
	ID         GuestID    `json:"convidado_id,omitzero"`
	Name       string     `json:"nome"`
	Attendance Attendance `json:"presenca"`
}

// IsNew reports whether the guest has not been stored on the server yet.
func (g Guest) IsNew() bool {
	return g.ID.IsZero()
}

// ConfirmFunc is asked before a guest is removed. Only a true answer lets the
// removal proceed.
type ConfirmFunc func(guest Guest) bool

// AttendanceSummary counts guests per attendance status.
type AttendanceSummary struct {
	Total       int
	Going       int
	NotGoing    int
	Unconfirmed int
}

// SummarizeAttendance walks guests once and counts each status. Unknown
// statuses are counted as unconfirmed, matching how they are displayed.
func SummarizeAttendance(guests []Guest) AttendanceSummary {
	s := AttendanceSummary{Total: len(guests)}
	for _, g := range guests {
		switch g.Attendance {
		case AttendanceGoing:
			s.Going++
		case AttendanceNotGoing:
			s.NotGoing++
		default:
			s.Unconfirmed++
		}
	}
	return s
}
