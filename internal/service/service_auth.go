package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, login with lockout, and account settings on top
// of a UserRepository, a CredentialHasher and a TokenService.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.CredentialHasher
	tokens         TokenService
	validator      validators.Validator

	// lockoutThreshold failed logins within lockoutWindow of the last
	// attempt lock the account.
	lockoutThreshold int
	lockoutWindow    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. now is the clock used for
// lockout decisions and attempt timestamps.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.CredentialHasher,
	tokens TokenService,
	cfg config.App,
	now func() time.Time,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		hasher:           hasher,
		tokens:           tokens,
		validator:        validators.NewUserValidator(),
		lockoutThreshold: cfg.LockoutThreshold,
		lockoutWindow:    cfg.LockoutWindow,
		now:              now,
		logger:           logger,
	}
}

// Register validates the form, checks username then email uniqueness,
// applies the password policy, hashes the password and stores the account
// with zero login attempts. A duplicate is reported before a weak password.
//
// Returns the new user id or:
//   - ErrInvalidDataProvided wrapping the validators error (including
//     validators.ErrWeakPassword).
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists, also
//     when a concurrent registration wins the race at insert time.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldUsername); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	taken, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return 0, storeFailure(err)
	}
	if taken {
		return 0, store.ErrUsernameAlreadyExists
	}

	taken, err = a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return 0, storeFailure(err)
	}
	if taken {
		return 0, store.ErrEmailAlreadyExists
	}

	if err = a.validator.Validate(ctx, req, validators.FieldPassword); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return 0, storeFailure(err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	return user.UserID, nil
}

// Login authenticates a user and issues a token.
//
//  1. Unknown username → ErrInvalidCredentials.
//  2. Locked account → ErrAccountLocked without comparing the hash.
//  3. Wrong password → the attempt counter is incremented atomically and
//     ErrInvalidCredentials is returned. Right password → the counter is
//     reset and a token is issued.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, storeFailure(err)
	}

	now := a.now()
	if user.IsLocked(now, a.lockoutThreshold, a.lockoutWindow) {
		log.Info().Int64("user_id", user.UserID).Int("attempts", user.LoginAttempts).Msg("login rejected: account locked")
		return models.Token{}, ErrAccountLocked
	}

	ok, err := a.hasher.Verify(ctx, req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password verification failed")
		return models.Token{}, fmt.Errorf("verifying password: %w", err)
	}

	if !ok {
		attempts, err := a.userRepository.RecordFailedAttempt(ctx, user.UserID, now)
		if err != nil {
			return models.Token{}, storeFailure(err)
		}
		log.Info().Int64("user_id", user.UserID).Int("attempts", attempts).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if err = a.userRepository.ResetLoginAttempts(ctx, user.UserID, now); err != nil {
		return models.Token{}, storeFailure(err)
	}

	return a.tokens.Issue(ctx, user.UserID)
}

// Profile returns the owner-visible account data. The password digest is
// never part of it.
func (a *authService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		// the token outlived its account
		return models.Profile{}, ErrInvalidToken
	}
	if err != nil {
		return models.Profile{}, storeFailure(err)
	}

	return models.Profile{
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ChangePassword re-verifies the current password, applies the policy to
// the new one and stores its digest.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrInvalidToken
	}
	if err != nil {
		return storeFailure(err)
	}

	ok, err := a.hasher.Verify(ctx, req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return ErrInvalidCredentials
	}

	digest, err := a.hasher.Hash(ctx, req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, digest); err != nil {
		return storeFailure(err)
	}

	log.Info().Int64("user_id", userID).Msg("password changed")

	return nil
}

// storeFailure passes domain store errors through and hides everything
// else behind ErrStoreFailure.
func storeFailure(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists),
		errors.Is(err, store.ErrEmailAlreadyExists),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrNoteNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
}
