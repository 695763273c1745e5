// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientNoteService struct {
	adapter   adapter.ServerAdapter
	hasher    crypto.CredentialHasher
	cipher    crypto.NoteCipher
	validator validators.Validator

	logger *logger.Logger
}

func NewClientNoteService(
	serverAdapter adapter.ServerAdapter,
	hasher crypto.CredentialHasher,
	cipher crypto.NoteCipher,
	logger *logger.Logger,
) ClientNoteService {
	return &clientNoteService{
		adapter:   serverAdapter,
		hasher:    hasher,
		cipher:    cipher,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.NoteSummary, error) {
	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return notes, nil
}

func (s *clientNoteService) Add(ctx context.Context, req models.NoteRequest) (int64, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	noteID, err := s.adapter.AddNote(ctx, req)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	return noteID, nil
}

func (s *clientNoteService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := s.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (s *clientNoteService) Open(ctx context.Context, noteID int64, passphrase string) (string, error) {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return "", err
	}

	if !note.IsEncrypted {
		return note.Content, nil
	}

	if err = s.checkPassphrase(ctx, note, passphrase); err != nil {
		return "", err
	}

	content, err := s.cipher.Decrypt(note.Content, passphrase)
	if err != nil {
		s.logger.Warn().Err(err).Int64("note_id", noteID).Msg("passphrase matched but decryption failed")
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return content, nil
}

func (s *clientNoteService) Edit(ctx context.Context, noteID int64, req models.NoteRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.adapter.EditNote(ctx, noteID, req); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID int64) error {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return err
	}

	if note.IsEncrypted {
		return ErrPassphraseRequired
	}

	return s.delete(ctx, noteID)
}

func (s *clientNoteService) DeleteProtected(ctx context.Context, noteID int64, passphrase string) error {
	note, err := s.Get(ctx, noteID)
	if err != nil {
		return err
	}

	if note.IsEncrypted {
		if err = s.checkPassphrase(ctx, note, passphrase); err != nil {
			return err
		}
	}

	return s.delete(ctx, noteID)
}

func (s *clientNoteService) delete(ctx context.Context, noteID int64) error {
	if err := s.adapter.DeleteNote(ctx, noteID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}

// checkPassphrase verifies passphrase against the note digest. A digest
// that cannot be checked at all counts as a wrong passphrase as well.
func (s *clientNoteService) checkPassphrase(ctx context.Context, note models.Note, passphrase string) error {
	if passphrase == "" {
		return ErrWrongPassphrase
	}

	ok, err := s.hasher.Verify(ctx, passphrase, note.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrHashVerification) {
			s.logger.Warn().Err(err).Int64("note_id", note.NoteID).Msg("note digest is malformed")
			return ErrWrongPassphrase
		}
		return err
	}
	if !ok {
		return ErrWrongPassphrase
	}

	return nil
}
