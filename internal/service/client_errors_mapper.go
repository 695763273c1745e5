// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error using the stable error code sent by the server.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Code {
	case app.CodeValidationError:
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, apiErr.Message)
	case app.CodeWeakPassword:
		return fmt.Errorf("%w: %w: %s", ErrInvalidDataProvided, validators.ErrWeakPassword, apiErr.Message)
	case app.CodeDuplicateUsername:
		return store.ErrUsernameAlreadyExists
	case app.CodeDuplicateEmail:
		return store.ErrEmailAlreadyExists
	case app.CodeInvalidCredentials:
		return ErrInvalidCredentials
	case app.CodeInvalidToken:
		return ErrNotAuthenticated
	case app.CodeAccountLocked:
		return ErrAccountLocked
	case app.CodeNotFound:
		return store.ErrNoteNotFound
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrNotAuthenticated
	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %s", ErrServerFailure, apiErr.Message)
	}

	return err
}
