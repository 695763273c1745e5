package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the account and the locally stored session.
type ClientAuthService interface {
	// Register validates the form locally and creates the account. It does
	// not log in.
	Register(ctx context.Context, req models.RegisterRequest) (int64, error)

	// Login authenticates and persists the token under [SessionTokenKey].
	Login(ctx context.Context, req models.LoginRequest) error

	// Logout forgets the token locally. Tokens are stateless, so the server
	// is not contacted.
	Logout(ctx context.Context) error

	// Restore loads the persisted token into the adapter. Returns
	// [ErrNotAuthenticated] when there is none.
	Restore(ctx context.Context) error

	Profile(ctx context.Context) (models.Profile, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}

// ClientNoteService manages notes through the server and performs the
// passphrase checks and decryption that happen on the client.
type ClientNoteService interface {
	List(ctx context.Context) ([]models.NoteSummary, error)
	Add(ctx context.Context, req models.NoteRequest) (int64, error)

	// Get returns the note as stored: encrypted notes keep the cipher blob.
	Get(ctx context.Context, noteID int64) (models.Note, error)

	// Open returns the readable content. Encrypted notes need passphrase:
	// a mismatch with the stored digest is [ErrWrongPassphrase]; a blob that
	// then fails to decrypt is [ErrDecryptionFailed].
	Open(ctx context.Context, noteID int64, passphrase string) (string, error)

	Edit(ctx context.Context, noteID int64, req models.NoteRequest) error

	// Delete removes a plaintext note. Encrypted notes return
	// [ErrPassphraseRequired]; use DeleteProtected for them.
	Delete(ctx context.Context, noteID int64) error

	// DeleteProtected removes a note after checking passphrase against an
	// encrypted note's digest.
	DeleteProtected(ctx context.Context, noteID int64, passphrase string) error
}
