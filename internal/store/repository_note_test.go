// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noteRowColumns = []string{"note_id", "owner_id", "title", "content", "is_encrypted", "password", "creation_date"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestNoteRepo(t *testing.T, db *sql.DB) NoteRepository {
	t.Helper()
	return NewNoteRepository(&DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestNoteRepository_CreateNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	note := models.Note{
		OwnerID:      42,
		Title:        "groceries",
		Content:      "milk",
		CreationDate: models.NewDate(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes (owner_id,title,content,is_encrypted,password,creation_date) VALUES ($1,$2,$3,$4,$5,$6) RETURNING note_id")).
		WithArgs(int64(42), "groceries", "milk", false, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"note_id"}).AddRow(int64(11)))

	id, err := repo.CreateNote(testContext(), note)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CreateNote_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(pgError("23503"))

	_, err := repo.CreateNote(testContext(), models.Note{OwnerID: 1, Title: "t"})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestNoteRepository_ListNotes(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantLen int
	}{
		{
			name: "two notes",
			rows: sqlmock.NewRows([]string{"note_id", "title", "creation_date"}).
				AddRow(int64(1), "a", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).
				AddRow(int64(2), "b", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
			wantLen: 2,
		},
		{
			name:    "no notes yields empty list",
			rows:    sqlmock.NewRows([]string{"note_id", "title", "creation_date"}),
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestNoteRepo(t, db)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT note_id, title, creation_date FROM notes WHERE owner_id = $1 ORDER BY note_id")).
				WithArgs(int64(42)).
				WillReturnRows(tt.rows)

			notes, err := repo.ListNotes(testContext(), 42)
			require.NoError(t, err)
			require.NotNil(t, notes)
			assert.Len(t, notes, tt.wantLen)
		})
	}
}

func TestNoteRepository_ListNotes_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectQuery("SELECT note_id").
		WillReturnRows(sqlmock.NewRows([]string{"note_id", "title", "creation_date"}).
			AddRow(int64(1), "a", 12345))

	_, err := repo.ListNotes(testContext(), 42)
	require.ErrorIs(t, err, ErrScanningRows)
}

func TestNoteRepository_GetNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE note_id = $1 AND owner_id = $2")).
		WithArgs(int64(5), int64(42)).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(int64(5), int64(42), "secret", "blob", true, "$2a$10$digest", date))

	note, err := repo.GetNote(testContext(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), note.NoteID)
	assert.Equal(t, int64(42), note.OwnerID)
	assert.True(t, note.IsEncrypted)
	assert.Equal(t, "$2a$10$digest", note.Password)
	assert.Equal(t, "2026-02-03", note.CreationDate.String())
}

func TestNoteRepository_GetNote_NullPassword(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectQuery("FROM notes").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(int64(5), int64(42), "plain", "text", false, nil, time.Now()))

	note, err := repo.GetNote(testContext(), 42, 5)
	require.NoError(t, err)
	assert.Empty(t, note.Password)
}

func TestNoteRepository_GetNote_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectQuery("FROM notes").
		WithArgs(int64(5), int64(7)).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.GetNote(testContext(), 7, 5)
	require.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_UpdateNote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "other owner", affected: 0, wantErr: ErrNoteNotFound},
		{name: "exec error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := newTestNoteRepo(t, db)

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE notes SET title = $1")).
				WithArgs("t", "c", false, nil, sqlmock.AnyArg(), int64(5), int64(42))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.UpdateNote(testContext(), models.Note{
				NoteID:       5,
				OwnerID:      42,
				Title:        "t",
				Content:      "c",
				CreationDate: models.NewDate(time.Now()),
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNoteRepository_DeleteNote(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE note_id = $1 AND owner_id = $2")).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE note_id = $1 AND owner_id = $2")).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteNote(testContext(), 42, 5))
	require.ErrorIs(t, repo.DeleteNote(testContext(), 42, 5), ErrNoteNotFound)
}
