package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyGuestName     = errors.New("guest name is required")
	ErrUnknownAttendance  = errors.New("unknown attendance status")
	ErrMissingGuestID     = errors.New("guest id is required")
	ErrEmptyLoginUsername = errors.New("login username is required")
	ErrEmptyLoginPassword = errors.New("login password is required")
)
