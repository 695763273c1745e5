// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the wire and storage format of [Date].
const DateLayout = time.DateOnly

// Note is a single text note exclusively owned by one user.
type Note struct {
	// NoteID is the store-assigned identifier of the note.
	NoteID int64 `json:"note_id"`

	// OwnerID references the owning [User]. Every query is scoped by it.
	OwnerID int64 `json:"-"`

	Title string `json:"title"`

	// Content is the plaintext body, or the cipher blob when IsEncrypted.
	Content string `json:"content"`

	IsEncrypted bool `json:"is_encrypted"`

	// Password is the bcrypt digest of the note passphrase. It is empty
	// when IsEncrypted is false and independent of the owner's password.
	Password string `json:"password,omitempty"`

	// CreationDate is re-stamped on every edit and acts as the
	// last-modified date.
	CreationDate Date `json:"creation_date"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteSummary is the list view of a [Note].
type NoteSummary struct {
	NoteID       int64  `json:"note_id"`
	Title        string `json:"title"`
	CreationDate Date   `json:"creation_date"`
}

// NoteRequest carries the user-entered fields of an add or edit.
// Passphrase is only read when IsEncrypted is true and is never stored.
type NoteRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsEncrypted bool   `json:"is_encrypted"`
	Passphrase  string `json:"passphrase,omitempty"`
}

// NoteCreatedResponse is returned by a successful add.
type NoteCreatedResponse struct {
	NoteID int64 `json:"note_id"`
}
