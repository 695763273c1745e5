// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 10

type bcryptHasher struct {
	cost int
	pool workers.Pool
}

// NewCredentialHasher returns a bcrypt [CredentialHasher] with the given
// cost. Every hash and verify runs inside pool so concurrent logins cannot
// occupy more CPUs than the pool allows.
func NewCredentialHasher(cost int, pool workers.Pool) CredentialHasher {
	if cost == 0 {
		cost = DefaultHashCost
	}

	return &bcryptHasher{cost: cost, pool: pool}
}

func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	var (
		digest []byte
		err    error
	)

	if poolErr := h.pool.Do(ctx, func() {
		digest, err = bcrypt.GenerateFromPassword(prehash(plaintext), h.cost)
	}); poolErr != nil {
		return "", poolErr
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}

	return string(digest), nil
}

func (h *bcryptHasher) Verify(ctx context.Context, plaintext, digest string) (bool, error) {
	var err error

	if poolErr := h.pool.Do(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(digest), prehash(plaintext))
	}); poolErr != nil {
		return false, poolErr
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrHashVerification, err)
	}
}

// prehash condenses plaintext to 44 bytes so secrets of any length fit
// under bcrypt's 72-byte input limit.
func prehash(plaintext string) []byte {
	sum := blake2b.Sum256([]byte(plaintext))

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
