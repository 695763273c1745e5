// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to the
// notes server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are returned as [*APIError], which unwraps to the
// sentinel of its status code (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401) and carries the server's stable error code.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations handle serialisation, the Authorization header and
// mapping of transport errors.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (int64, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	Profile(ctx context.Context) (models.Profile, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	ListNotes(ctx context.Context) ([]models.NoteSummary, error)
	AddNote(ctx context.Context, req models.NoteRequest) (int64, error)
	GetNote(ctx context.Context, noteID int64) (models.Note, error)
	EditNote(ctx context.Context, noteID int64, req models.NoteRequest) error
	DeleteNote(ctx context.Context, noteID int64) error

	Version(ctx context.Context) (models.VersionResponse, error)
}
