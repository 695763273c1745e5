// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/crypto"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService stores notes, encrypting the content and hashing the
// passphrase of encrypted ones. Input is expected to be validated by a
// wrapper, see [NewNoteValidationService].
type noteService struct {
	noteRepository store.NoteRepository
	hasher         crypto.CredentialHasher
	cipher         crypto.NoteCipher

	// pool bounds the key derivation of the cipher the same way it bounds
	// bcrypt inside the hasher
	pool workers.Pool

	now    func() time.Time
	logger *logger.Logger
}

func NewNoteService(
	noteRepository store.NoteRepository,
	hasher crypto.CredentialHasher,
	cipher crypto.NoteCipher,
	pool workers.Pool,
	now func() time.Time,
	logger *logger.Logger,
) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		hasher:         hasher,
		cipher:         cipher,
		pool:           pool,
		now:            now,
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, ownerID int64) ([]models.NoteSummary, error) {
	notes, err := s.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		return nil, storeFailure(err)
	}

	return notes, nil
}

func (s *noteService) Add(ctx context.Context, ownerID int64, req models.NoteRequest) (int64, error) {
	note, err := s.buildNote(ctx, ownerID, req)
	if err != nil {
		return 0, err
	}

	noteID, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return 0, storeFailure(err)
	}

	logger.FromContext(ctx).Debug().Int64("note_id", noteID).Bool("encrypted", note.IsEncrypted).Msg("note added")

	return noteID, nil
}

// Get returns the stored note. Encrypted notes come back as the cipher
// blob together with the passphrase digest; decryption happens on the
// client.
func (s *noteService) Get(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, storeFailure(err)
	}

	return note, nil
}

// Edit replaces all mutable fields in one statement and re-stamps the date.
func (s *noteService) Edit(ctx context.Context, ownerID, noteID int64, req models.NoteRequest) error {
	note, err := s.buildNote(ctx, ownerID, req)
	if err != nil {
		return err
	}
	note.NoteID = noteID

	if err = s.noteRepository.UpdateNote(ctx, note); err != nil {
		return storeFailure(err)
	}

	return nil
}

func (s *noteService) Delete(ctx context.Context, ownerID, noteID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return storeFailure(err)
	}

	return nil
}

// buildNote turns a request into the stored form. The passphrase itself is
// dropped after use.
func (s *noteService) buildNote(ctx context.Context, ownerID int64, req models.NoteRequest) (models.Note, error) {
	note := models.Note{
		OwnerID:      ownerID,
		Title:        req.Title,
		Content:      req.Content,
		IsEncrypted:  req.IsEncrypted,
		CreationDate: models.NewDate(s.now()),
	}

	if !req.IsEncrypted {
		return note, nil
	}

	var (
		blob       string
		encryptErr error
	)
	if err := s.pool.Do(ctx, func() {
		blob, encryptErr = s.cipher.Encrypt(req.Content, req.Passphrase)
	}); err != nil {
		return models.Note{}, err
	}
	if encryptErr != nil {
		s.logger.Err(encryptErr).Msg("note encryption failed")
		return models.Note{}, fmt.Errorf("encrypting note: %w", encryptErr)
	}

	digest, err := s.hasher.Hash(ctx, req.Passphrase)
	if err != nil {
		return models.Note{}, fmt.Errorf("hashing passphrase: %w", err)
	}

	note.Content = blob
	note.Password = digest

	return note, nil
}
