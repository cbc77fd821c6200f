package models

// SessionState is the authentication state of the client.
type SessionState int

const (
	SessionUnauthenticated SessionState = iota
	SessionAuthenticated
)

func (s SessionState) String() string {
	if s == SessionAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// SessionChangeReason tells observers what caused a state change.
type SessionChangeReason string

const (
	SessionRestored SessionChangeReason = "restored"
	SessionLogin    SessionChangeReason = "login"
	SessionLogout   SessionChangeReason = "logout"
	// SessionExpired is used when the server rejected the credential.
	SessionExpired SessionChangeReason = "expired"
)

// SessionChange is delivered to session observers after every transition.
type SessionChange struct {
	State  SessionState
	Reason SessionChangeReason
}
