package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// MaxTitleLength is the maximum number of characters of a note title.
const MaxTitleLength = 255

// Field names accepted by [NoteValidator].
const (
	FieldTitle      = "title"
	FieldPassphrase = "passphrase"
)

// NoteValidator validates add and edit requests of notes.
type NoteValidator struct{}

// NewNoteValidator constructs a NoteValidator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteRequest:
		return v.validateNoteRequest(value, fields...)
	case *models.NoteRequest:
		return v.validateNoteRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNoteRequest(req models.NoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return invalid(ErrEmptyTitle)
			}
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return invalid(ErrTitleTooLong)
			}
		case FieldPassphrase:
			// plaintext notes ignore the passphrase entirely
			if !req.IsEncrypted {
				continue
			}
			if err := ValidatePassword(req.Passphrase); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
