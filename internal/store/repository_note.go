// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Every statement carries owner_id in its WHERE clause,
// so a note of another owner behaves exactly like a missing one.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return 0, err
	}

	var noteID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&noteID); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return noteID, nil
}

func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64) ([]models.NoteSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error selecting notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.NoteSummary, 0)
	for rows.Next() {
		var summary models.NoteSummary
		if err = rows.Scan(&summary.NoteID, &summary.Title, &summary.CreationDate); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning notes")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building query")
		return models.Note{}, err
	}

	var (
		note     models.Note
		password sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.IsEncrypted,
		&password,
		&note.CreationDate,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	note.Password = password.String

	return note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return err
	}

	return r.execAffectingNote(ctx, "*noteRepository.UpdateNote", query, args)
}

func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return err
	}

	return r.execAffectingNote(ctx, "*noteRepository.DeleteNote", query, args)
}

func (r *noteRepository) execAffectingNote(ctx context.Context, fn, query string, args []any) error {
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
		return ErrNoteNotFound
	}

	return nil
}
