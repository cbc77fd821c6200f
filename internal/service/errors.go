package service

import "errors"

// Failure kinds. Every [*Error] carries exactly one of them.
var (
	ErrAuthentication     = errors.New("authentication failed")
	ErrFetch              = errors.New("fetching guests failed")
	ErrSave               = errors.New("saving guest failed")
	ErrDelete             = errors.New("deleting guest failed")
	ErrValidation         = errors.New("invalid input")
	ErrDeleteNotConfirmed = errors.New("delete not confirmed")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPersistCredential  = errors.New("credential persistence failed")
)

// Causes wrapped inside an [*Error] next to its kind.
var (
	// ErrNetwork marks failures where no response reached the client.
	ErrNetwork = errors.New("network unavailable")
	// ErrSessionExpired marks a 401 received on an authenticated request.
	ErrSessionExpired = errors.New("session expired")
)

// Error is the failure type returned by the services.
type Error struct {
	// Kind is one of the failure kind sentinels.
	Kind error
	// Message is the text shown to the user.
	Message string
	// Err is the underlying cause, may be nil.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Cause returns the technical description of the failure, for logs.
func (e *Error) Cause() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// UserMessage returns the user-facing text of err, or fallback when err was
// not produced by this package.
func UserMessage(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return fallback
}
