package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
)

type ClientServices struct {
	AuthService ClientAuthService
	NoteService ClientNoteService
}

// NewClientServices wires the client services. Passphrase checks run one at
// a time, the CLI never needs more.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	hasher := crypto.NewCredentialHasher(crypto.DefaultHashCost, workers.NewPool(1))

	return &ClientServices{
		AuthService: NewClientAuthService(storages.SessionStore, serverAdapter, logger),
		NoteService: NewClientNoteService(serverAdapter, hasher, crypto.NewNoteCipher(), logger),
	}
}
