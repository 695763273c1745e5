package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [UserValidator].
const (
	FieldEmail            = "email"
	FieldUsername         = "username"
	FieldPassword         = "password"
	FieldNewPassword      = "new_password"
	FieldRepeatedPassword = "repeated_password"
)

// UserValidator validates account requests: registration, login and
// password change.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldUsername:
			if strings.TrimSpace(req.Username) == "" {
				return invalid(ErrEmptyUsername)
			}
		case FieldPassword:
			if err := ValidatePassword(req.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only rejects empty input. The password policy is not applied
// to logins so that accounts created under an older policy can still sign in.
func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return invalid(ErrEmptyUsername)
			}
		case FieldPassword:
			if req.Password == "" {
				return invalid(ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRepeatedPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRepeatedPassword:
			if req.NewPassword != req.RepeatedPassword {
				return invalid(ErrPasswordsMismatch)
			}
		case FieldNewPassword:
			if err := ValidatePassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid(ErrInvalidEmail)
	}
	return nil
}

func invalid(rule error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, rule)
}
