// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	noteID, err := h.services.NoteService.Add(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NoteCreatedResponse{NoteID: noteID}, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), userID, noteID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NoteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.services.NoteService.Edit(r.Context(), userID, noteID, req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), userID, noteID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteParams returns the authenticated owner and the {id} path parameter.
func noteParams(r *http.Request) (userID, noteID int64, err error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNoUserIDInContext
	}

	noteID, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID <= 0 {
		return 0, 0, ErrInvalidNoteID
	}

	return userID, noteID, nil
}
