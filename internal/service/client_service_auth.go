package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// SessionTokenKey is the session store key of the bearer token.
const SessionTokenKey = "user_token"

type clientAuthService struct {
	session   store.SessionStore
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(session store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:   session,
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	userID, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("username", req.Username).Msg("registration failed")
		return 0, mapAdapterError(err)
	}

	return userID, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("username", req.Username).Msg("login failed")
		return mapAdapterError(err)
	}

	if err = a.session.Set(ctx, SessionTokenKey, token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.session.Remove(ctx, SessionTokenKey); err != nil {
		return fmt.Errorf("removing session: %w", err)
	}

	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) error {
	token, err := a.session.Get(ctx, SessionTokenKey)
	if errors.Is(err, store.ErrSessionKeyNotFound) {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	a.adapter.SetToken(token)

	return nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := a.adapter.Profile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := a.adapter.ChangePassword(ctx, req); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
