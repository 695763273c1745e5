package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	userColumns = `user_id, email, username, password_hash, login_attempts, last_attempt_time, created_at`

	createUser = `INSERT INTO users (email, username, password_hash)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	existsByUsername = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	existsByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`

	// the increment happens inside the row lock so concurrent failures
	// never lose an attempt
	recordFailedAttempt = `UPDATE users
    SET login_attempts = login_attempts + 1, last_attempt_time = $2
    WHERE user_id = $1
    RETURNING login_attempts;`

	resetLoginAttempts = `UPDATE users
    SET login_attempts = 0, last_attempt_time = $2
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`
)

const (
	notesTable   = "notes"
	sessionTable = "session"
)

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteQ = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	noteColumns = []string{"note_id", "owner_id", "title", "content", "is_encrypted", "password", "creation_date"}
)

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.Insert(notesTable).
		Columns("owner_id", "title", "content", "is_encrypted", "password", "creation_date").
		Values(note.OwnerID, note.Title, note.Content, note.IsEncrypted, nullableString(note.Password), note.CreationDate).
		Suffix("RETURNING note_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListNotesQuery(ownerID int64) (string, []any, error) {
	query, args, err := psql.Select("note_id", "title", "creation_date").
		From(notesTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("note_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetNoteQuery(ownerID, noteID int64) (string, []any, error) {
	query, args, err := psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"note_id": noteID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("is_encrypted", note.IsEncrypted).
		Set("password", nullableString(note.Password)).
		Set("creation_date", note.CreationDate).
		Where(sq.Eq{"note_id": note.NoteID, "owner_id": note.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteNoteQuery(ownerID, noteID int64) (string, []any, error) {
	query, args, err := psql.Delete(notesTable).
		Where(sq.Eq{"note_id": noteID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetSessionQuery(key string) (string, []any, error) {
	query, args, err := sqliteQ.Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetSessionQuery(key, value string, at time.Time) (string, []any, error) {
	query, args, err := sqliteQ.Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRemoveSessionQuery(key string) (string, []any, error) {
	query, args, err := sqliteQ.Delete(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// nullableString stores an empty passphrase digest as NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}

	return s
}
