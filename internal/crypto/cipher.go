// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// blobVersion prefixes every ciphertext so the layout can change later.
	blobVersion byte = 1
	saltSize         = 16
)

// Argon2Params tunes the passphrase key derivation.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params are the OWASP recommended Argon2id settings:
// 1 iteration, 64 MiB, 4 lanes.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// noteCipher is the AES-256-GCM implementation of [NoteCipher].
//
// Blob layout before base64 (standard encoding):
//
//	version (1) ‖ salt (16) ‖ nonce (12) ‖ ciphertext+tag
//
// The key is Argon2id(passphrase, salt). The sealed plaintext is the JSON
// encoding of the note content.
type noteCipher struct {
	params Argon2Params
}

// NewNoteCipher constructs a [NoteCipher] with [DefaultArgon2Params].
func NewNoteCipher() NoteCipher {
	return NewNoteCipherWithParams(DefaultArgon2Params)
}

// NewNoteCipherWithParams constructs a [NoteCipher] with custom Argon2id
// parameters. Ciphertexts are only decryptable with the same parameters.
func NewNoteCipherWithParams(params Argon2Params) NoteCipher {
	return &noteCipher{params: params}
}

func (c *noteCipher) Encrypt(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	payload, err := json.Marshal(plaintext)
	if err != nil {
		return "", fmt.Errorf("marshal content: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, 1+saltSize+len(nonce)+len(payload)+gcm.Overhead())
	blob = append(blob, blobVersion)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, payload, []byte{blobVersion})

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (c *noteCipher) Decrypt(ciphertext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryptionFailed, err)
	}

	if len(blob) < 1+saltSize || blob[0] != blobVersion {
		return "", fmt.Errorf("%w: unknown blob layout", ErrDecryptionFailed)
	}
	salt := blob[1 : 1+saltSize]

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	rest := blob[1+saltSize:]
	if len(rest) < gcm.NonceSize()+gcm.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	payload, err := gcm.Open(nil, nonce, sealed, []byte{blobVersion})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	var content string
	if err := json.Unmarshal(payload, &content); err != nil {
		return "", fmt.Errorf("%w: unmarshal content: %w", ErrDecryptionFailed, err)
	}

	return content, nil
}

func (c *noteCipher) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(passphrase), salt, c.params.Time, c.params.Memory, c.params.Threads, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
