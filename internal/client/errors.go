package client

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

var (
	ErrPassphraseMismatch = errors.New("passphrases do not match")
	ErrEmptyPassphrase    = errors.New("passphrase must not be empty")
	ErrInvalidNoteID      = errors.New("note id must be a positive integer")
)

var userMessages = []struct {
	err error
	msg string
}{
	{service.ErrNotAuthenticated, "not logged in, run `notes login` first"},
	{service.ErrInvalidCredentials, "invalid username or password"},
	{service.ErrAccountLocked, "account is locked after too many failed logins, try again later"},
	{service.ErrWrongPassphrase, "wrong passphrase"},
	{service.ErrDecryptionFailed, "note could not be decrypted"},
	{store.ErrNoteNotFound, "note not found"},
	{store.ErrUsernameAlreadyExists, "username is already taken"},
	{store.ErrEmailAlreadyExists, "email is already registered"},
	{service.ErrServerFailure, "server error, try again later"},
}

// Message returns the text shown to the user for err. Validation failures
// keep their full chain so the violated rule is visible.
func Message(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}
