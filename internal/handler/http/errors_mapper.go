package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// apiError is the wire form of a service error.
type apiError struct {
	status  int
	code    string
	message string
}

// errorMappings is checked in order: the weak password rule is wrapped in
// ErrInvalidDataProvided, so it has to come first.
var errorMappings = []struct {
	target error
	apiError
}{
	{validators.ErrWeakPassword, apiError{http.StatusBadRequest, app.CodeWeakPassword, app.MsgWeakPassword}},
	{service.ErrInvalidDataProvided, apiError{http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidDataProvided}},
	{ErrInvalidNoteID, apiError{http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidNoteID}},
	{store.ErrUsernameAlreadyExists, apiError{http.StatusConflict, app.CodeDuplicateUsername, app.MsgUsernameAlreadyExists}},
	{store.ErrEmailAlreadyExists, apiError{http.StatusConflict, app.CodeDuplicateEmail, app.MsgEmailAlreadyExists}},
	{service.ErrInvalidCredentials, apiError{http.StatusUnauthorized, app.CodeInvalidCredentials, app.MsgInvalidCredentials}},
	{service.ErrInvalidToken, apiError{http.StatusUnauthorized, app.CodeInvalidToken, app.MsgTokenIsExpiredOrInvalid}},
	{ErrEmptyAuthorizationHeader, apiError{http.StatusUnauthorized, app.CodeInvalidToken, app.MsgTokenIsExpiredOrInvalid}},
	{utils.ErrInvalidAuthorizationHeader, apiError{http.StatusUnauthorized, app.CodeInvalidToken, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrAccountLocked, apiError{http.StatusForbidden, app.CodeAccountLocked, app.MsgAccountLocked}},
	{store.ErrNoteNotFound, apiError{http.StatusNotFound, app.CodeNotFound, app.MsgNoteNotFound}},
	{context.DeadlineExceeded, apiError{http.StatusServiceUnavailable, app.CodeInternalError, app.MsgRequestTimeout}},
}

var internalError = apiError{http.StatusInternalServerError, app.CodeInternalError, app.MsgInternalServerError}

func apiErrorFrom(err error) apiError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.apiError
		}
	}
	return internalError
}

// writeError maps err to its status and stable code and writes the JSON
// error body. Validation failures carry the violated rule in the message;
// everything unexpected is logged and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	e := apiErrorFrom(err)

	message := e.message
	switch e.code {
	case app.CodeValidationError, app.CodeWeakPassword:
		if rule := validationRule(err); rule != "" {
			message += ": " + rule
		}
		log.Debug().Err(err).Int("status", e.status).Msg("request rejected")
	case app.CodeInternalError:
		log.Err(err).Int("status", e.status).Msg("request failed")
	default:
		log.Info().Err(err).Int("status", e.status).Msg("request rejected")
	}

	utils.WriteError(w, e.status, e.code, message)
}

var rules = []error{
	validators.ErrPasswordTooShort,
	validators.ErrPasswordNoLowercase,
	validators.ErrPasswordNoUppercase,
	validators.ErrPasswordNoDigit,
	validators.ErrPasswordNoSpecial,
	validators.ErrEmptyUsername,
	validators.ErrEmptyPassword,
	validators.ErrInvalidEmail,
	validators.ErrPasswordsMismatch,
	validators.ErrEmptyTitle,
	validators.ErrTitleTooLong,
}

// validationRule returns the user-facing text of the validators rule in the
// chain of err, or "".
func validationRule(err error) string {
	for _, rule := range rules {
		if errors.Is(err, rule) {
			return rule.Error()
		}
	}
	return ""
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, http.StatusText(http.StatusNotFound))
}
