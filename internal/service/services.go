package service

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices wires the server services over storages. All of them share
// one hashing pool sized by cfg.Workers.HashWorkers and the wall clock.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	pool := workers.NewPool(cfg.Workers.HashWorkers)
	hasher := crypto.NewCredentialHasher(cfg.App.PasswordHashCost, pool)
	cipher := crypto.NewNoteCipher()
	tokens := NewTokenService(cfg.App, time.Now)

	notes := NewNoteService(storages.NoteRepository, hasher, cipher, pool, time.Now, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokens, cfg.App, time.Now, logger),
		TokenService:   tokens,
		NoteService:    NewNoteValidationService().Wrap(notes),
		AppInfoService: NewAppInfoService(cfg.App, build, logger),
	}
}
