package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their lockout counters.
type UserRepository interface {
	// CreateUser inserts a user and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// RecordFailedAttempt atomically increments the failed login counter,
	// stamps the attempt time and returns the new counter value.
	RecordFailedAttempt(ctx context.Context, userID int64, at time.Time) (int, error)
	// ResetLoginAttempts zeroes the counter and stamps the attempt time.
	ResetLoginAttempts(ctx context.Context, userID int64, at time.Time) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// NoteRepository persists notes. Every operation is scoped by owner.
type NoteRepository interface {
	// CreateNote inserts a note and returns its assigned NoteID.
	CreateNote(ctx context.Context, note models.Note) (int64, error)
	ListNotes(ctx context.Context, ownerID int64) ([]models.NoteSummary, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	// UpdateNote overwrites title, content, encryption flag, passphrase
	// digest and date of the note identified by NoteID and OwnerID.
	UpdateNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}

// SessionStore is the client-side key-value store for session state.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
