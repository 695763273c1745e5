package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService validates add and edit requests before they reach
// the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) List(ctx context.Context, ownerID int64) ([]models.NoteSummary, error) {
	return v.inner.List(ctx, ownerID)
}

func (v *NoteValidationService) Add(ctx context.Context, ownerID int64, req models.NoteRequest) (int64, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Add(ctx, ownerID, req)
}

func (v *NoteValidationService) Get(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return v.inner.Get(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Edit(ctx context.Context, ownerID, noteID int64, req models.NoteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Edit(ctx, ownerID, noteID, req)
}

func (v *NoteValidationService) Delete(ctx context.Context, ownerID, noteID int64) error {
	return v.inner.Delete(ctx, ownerID, noteID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
