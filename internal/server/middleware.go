package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopmeco/backend/internal/auth"
	"github.com/shopmeco/backend/internal/storage"
)

type actorCtxKey struct{}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(auth.AuthHeader)
		if header == "" {
			respondError(w, http.StatusUnauthorized, "authorization header is required")
			return
		}

		claims, err := s.tokens.ParseAuthHeader(header)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err))
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		actor := storage.Actor{UserID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFromContext(ctx context.Context) (storage.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(storage.Actor)
	return actor, ok
}

// mustActor is used by handlers behind authMiddleware, where the actor
// is always present.
func mustActor(r *http.Request) storage.Actor {
	actor, _ := actorFromContext(r.Context())
	return actor
}
