// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidNoteID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)
