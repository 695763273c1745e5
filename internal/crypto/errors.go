package crypto

import "errors"

var (
	// ErrHashVerification means the digest could not be checked at all.
	ErrHashVerification = errors.New("hash verification error")
	// ErrHashing means a new digest could not be produced.
	ErrHashing = errors.New("hashing error")
	// ErrDecryptionFailed means a wrong passphrase or a corrupted note.
	ErrDecryptionFailed = errors.New("wrong passphrase or corrupted note")
	// ErrEmptyPassphrase is returned when encrypting or decrypting with "".
	ErrEmptyPassphrase = errors.New("passphrase is empty")
)
