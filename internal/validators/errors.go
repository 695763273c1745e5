package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrWeakPassword is matched by every password policy failure.
	ErrWeakPassword = errors.New("weak password")

	ErrPasswordTooShort    = errors.New("password must be at least 10 characters long")
	ErrPasswordNoLowercase = errors.New("password must contain a lowercase letter")
	ErrPasswordNoUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain a digit")
	ErrPasswordNoSpecial   = errors.New("password must contain a special character")

	// ErrInvalidInput is matched by every malformed-input failure.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidEmail      = errors.New("email is invalid")
	ErrPasswordsMismatch = errors.New("new passwords do not match")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
)
