// Package crypto composes the password-hashing and symmetric-cipher
// primitives used for account credentials and note encryption.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "context"

// CredentialHasher stores and verifies secrets with a slow, salted hash.
//
// Hash returns a self-describing digest (algorithm, cost, salt and hash).
// Verify reports whether plaintext matches digest; a mismatch is
// (false, nil), while a malformed digest or any other failure of the
// primitive is reported as [ErrHashVerification].
type CredentialHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
}

// NoteCipher encrypts note content under a passphrase-derived key.
//
// The ciphertext is self-contained: decryption needs only the ciphertext
// and the passphrase. Decrypt returns [ErrDecryptionFailed] for a wrong
// passphrase or a corrupted blob.
type NoteCipher interface {
	Encrypt(plaintext, passphrase string) (string, error)
	Decrypt(ciphertext, passphrase string) (string, error)
}
