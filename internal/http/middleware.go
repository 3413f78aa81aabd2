package httpapp

import (
	"context"
	"net/http"
	"strings"

	"github.com/soundvault/soundvault/internal/apperr"
)

type contextKey string

const userIDKey contextKey = "userID"

// Authenticate requires a "Bearer <token>" Authorization header and puts
// the verified user id on the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			h.respondError(w, apperr.Authentication("missing or malformed authorization header"))
			return
		}

		claims, err := h.Tokens.Parse(token)
		if err != nil {
			h.respondError(w, apperr.Authentication("invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated user's id, or "" outside the
// authenticated route group.
func userID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
