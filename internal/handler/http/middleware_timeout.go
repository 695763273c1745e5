package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the request context by the configured request timeout.
// Handlers observe the deadline through the store and the hashing pool, and
// a deadline error is answered with 503.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
