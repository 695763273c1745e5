package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.TokenService.Verify] and, on success, stores the user id in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// A missing or malformed header and any invalid or expired token are all
// answered with 401 and the invalid_token code.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		token, err := h.services.TokenService.Verify(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUserID(r.Context(), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
