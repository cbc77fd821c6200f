package tui

import (
	"github.com/MKhiriev/guest-list-admin/models"
)

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

// sessionChangedMsg carries a notification of the session manager into the
// program loop.
type sessionChangedMsg struct {
	change models.SessionChange
}

type guestsLoadedMsg struct {
	guests []models.Guest
	err    error
}

type guestSavedMsg struct {
	err error
}

type guestDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
