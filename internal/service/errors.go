package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure. The
	// underlying validators error is kept in the chain, so
	// validators.ErrWeakPassword can still be matched.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers an unknown username and a wrong password
	// alike, so logins cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountLocked      = errors.New("account is temporarily locked")

	ErrInvalidToken        = errors.New("token is invalid or expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrStoreFailure hides storage failures that have no domain meaning.
	ErrStoreFailure = errors.New("storage failure")
)

// Client-side errors.
var (
	ErrWrongPassphrase  = errors.New("wrong passphrase")
	ErrDecryptionFailed = errors.New("note could not be decrypted")

	// ErrNotAuthenticated is returned when a command needs a session but no
	// token is stored or the server rejected the stored one.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrPassphraseRequired is returned when deleting an encrypted note
	// without its passphrase.
	ErrPassphraseRequired = errors.New("note is encrypted, passphrase required")

	ErrServerFailure = errors.New("server failure")
)
