package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

// SessionResumer validates a bearer token and resolves the session principal.
type SessionResumer interface {
	Resume(ctx context.Context, token string) (marketplace.Identity, error)
}

// Auth validates a bearer session token and seeds the request context with
// the resolved identity.
func Auth(resumer SessionResumer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			if resumer == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session resumer unavailable"))
				return
			}

			identity, err := resumer.Resume(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, identity.ID)
			ctx = context.WithValue(ctx, ctxRole, string(identity.Role))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    identity.ID,
					"actor_role": string(identity.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
