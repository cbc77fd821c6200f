package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/guest-list-admin/models"
)

// Field name constants accepted by [GuestValidator.Validate].
const (
	// FieldGuestName targets the display name of a guest.
	FieldGuestName = "nome"
	// FieldGuestAttendance targets the attendance status. An empty status is
	// accepted, it is defaulted by the caller.
	FieldGuestAttendance = "presenca"
	// FieldGuestID targets the server-assigned identifier.
	FieldGuestID = "convidado_id"

	FieldLoginUsername = "username"
	FieldLoginPassword = "password"
)

type GuestValidator struct {
}

func NewGuestValidator() Validator {
	return &GuestValidator{}
}

func (v *GuestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Guest:
		return v.validateGuest(ctx, value, fields...)
	case *models.Guest:
		return v.validateGuest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GuestValidator) validateGuest(_ context.Context, guest models.Guest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGuestName, FieldGuestAttendance}
	}

	for _, f := range fields {
		switch f {
		case FieldGuestName:
			if strings.TrimSpace(guest.Name) == "" {
				return ErrEmptyGuestName
			}
		case FieldGuestAttendance:
			if guest.Attendance != "" && !guest.Attendance.Valid() {
				return ErrUnknownAttendance
			}
		case FieldGuestID:
			if guest.ID.IsZero() {
				return ErrMissingGuestID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GuestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginUsername, FieldLoginPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginUsername:
			if strings.TrimSpace(req.Username) == "" {
				return ErrEmptyLoginUsername
			}
		case FieldLoginPassword:
			if req.Password == "" {
				return ErrEmptyLoginPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
