package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	usernameUniqueConstraint = "users_username_key"
	emailUniqueConstraint    = "users_email_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique_violation on users_username_key → [ErrUsernameAlreadyExists].
//   - unique_violation on users_email_key → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash)

	// pgx reports a constraint violation of INSERT ... RETURNING either here
	// or only when the row is scanned
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, createUserError(err)
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, createUserError(err)
	}

	return created, nil
}

func createUserError(err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == emailUniqueConstraint {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", fn).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "*userRepository.ExistsByUsername", existsByUsername, username)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "*userRepository.ExistsByEmail", existsByEmail, email)
}

func (r *userRepository) exists(ctx context.Context, fn, query, arg string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Err(err).Str("func", fn).Msg("error checking existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (r *userRepository) RecordFailedAttempt(ctx context.Context, userID int64, at time.Time) (int, error) {
	log := logger.FromContext(ctx)

	var attempts int
	err := r.db.QueryRowContext(ctx, recordFailedAttempt, userID, at).Scan(&attempts)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.RecordFailedAttempt").Msg("error recording failed attempt")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return attempts, nil
}

func (r *userRepository) ResetLoginAttempts(ctx context.Context, userID int64, at time.Time) error {
	return r.execAffectingUser(ctx, "*userRepository.ResetLoginAttempts", resetLoginAttempts, userID, at)
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.execAffectingUser(ctx, "*userRepository.UpdatePassword", updatePassword, userID, passwordHash)
}

// execAffectingUser runs an UPDATE keyed by user_id and maps zero affected
// rows to [ErrUserNotFound].
func (r *userRepository) execAffectingUser(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		lastAttempt sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.LoginAttempts,
		&lastAttempt,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastAttempt.Valid {
		t := lastAttempt.Time
		user.LastAttemptTime = &t
	}

	return user, nil
}
