// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// notes server handlers and the client adapter.
//
// Code* constants are the stable machine-readable categories carried in
// [models.ErrorResponse.Code]. Msg* constants are the human-readable
// messages written next to them. Keeping both in one place keeps the
// wording consistent across the API and lets the client match on codes.
package app

// Error codes.
const (
	CodeValidationError    = "validation_error"
	CodeWeakPassword       = "weak_password"
	CodeDuplicateUsername  = "duplicate_username"
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeAccountLocked      = "account_locked"
	CodeNotFound           = "not_found"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeInternalError      = "internal_error"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation. Validation failures append the rule.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgWeakPassword prefixes the violated password rule.
	MsgWeakPassword = "password does not satisfy the password policy"

	// MsgInvalidCredentials is returned for an unknown username and a wrong
	// password alike.
	MsgInvalidCredentials = "invalid username or password"

	// MsgAccountLocked is returned while the lockout window is active.
	MsgAccountLocked = "too many failed login attempts, try again later"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// missing, malformed, expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameAlreadyExists is returned when registration collides with
	// an existing username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyExists is returned when registration collides with an
	// existing email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNoteNotFound is returned both for missing notes and for notes of
	// other users.
	MsgNoteNotFound = "note not found"

	// MsgInvalidNoteID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidNoteID = "invalid note id"

	// MsgMethodNotAllowed is returned by the method check middleware.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. Details stay in the server log.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is returned when a request exceeds the configured
	// server timeout.
	MsgRequestTimeout = "request timed out"
)
