package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// tokenService signs HS256 JWTs with the configured key and issuer.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewTokenService constructs a TokenService. now is the clock used for both
// iat/exp stamping and expiry checks.
func NewTokenService(cfg config.App, now func() time.Time) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      now,
	}
}

func (s *tokenService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, s.now(), s.duration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}
