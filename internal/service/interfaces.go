package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -exclude_interfaces=NoteServiceWrapper -package=mock

// AuthService owns registration, login with lockout, and account settings.
type AuthService interface {
	// Register creates an account and returns its id.
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)
	// Login checks credentials and lockout state and issues a token.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(ctx context.Context, userID int64) (models.Token, error)
	// Verify returns [ErrInvalidToken] on any failure: bad signature, wrong
	// issuer, malformed subject or expiry.
	Verify(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of one owner at a time.
type NoteService interface {
	List(ctx context.Context, ownerID int64) ([]models.NoteSummary, error)
	Add(ctx context.Context, ownerID int64, req models.NoteRequest) (int64, error)
	Get(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	Edit(ctx context.Context, ownerID, noteID int64, req models.NoteRequest) error
	Delete(ctx context.Context, ownerID, noteID int64) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
