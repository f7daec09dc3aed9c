package middleware

import (
	"context"
	"net/http"
	"strings"

	"program-service/internal/domain"
	"program-service/pkg/response"

	"go.uber.org/zap"
)

type contextKey string

const ContextWorkspace contextKey = "workspace"

// WorkspaceStore resolves API tokens to workspaces.
type WorkspaceStore interface {
	GetWorkspaceByToken(ctx context.Context, token string) (*domain.Workspace, error)
}

// RequireWorkspace authenticates the request by its bearer token and injects
// the owning workspace into the request context.
func RequireWorkspace(store WorkspaceStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authz, "Bearer ")
			if token == "" || token == authz {
				response.Error(w, http.StatusUnauthorized, "missing or malformed Authorization header")
				return
			}

			ws, err := store.GetWorkspaceByToken(r.Context(), token)
			if err != nil {
				logger.Warn("workspace token rejected", zap.Error(err))
				response.Error(w, http.StatusUnauthorized, "invalid API token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextWorkspace, ws)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WorkspaceFromContext returns the workspace injected by RequireWorkspace.
func WorkspaceFromContext(ctx context.Context) (*domain.Workspace, bool) {
	ws, ok := ctx.Value(ContextWorkspace).(*domain.Workspace)
	return ws, ok
}

// RequireCronSecret guards internal maintenance endpoints invoked by the
// scheduler, not by end users.
func RequireCronSecret(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" || r.Header.Get("X-Cron-Secret") != secret {
				logger.Warn("cron endpoint called with bad secret",
					zap.String("path", r.URL.Path))
				response.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
