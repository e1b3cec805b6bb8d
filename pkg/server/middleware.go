package server

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gwaste/gwaste/pkg/db"
)

type contextKey string

const identityKey contextKey = "identity"

// authMiddleware requires a Firebase ID token as a Bearer token on every
// /api request.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		identity, err := s.verifier.VerifyIDToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			s.logger.Warn("Rejected request with invalid token", zap.Error(err))
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom returns the verified caller, or nil outside the auth
// middleware.
func identityFrom(ctx context.Context) *db.Identity {
	identity, _ := ctx.Value(identityKey).(*db.Identity)
	return identity
}
