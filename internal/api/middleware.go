package api

import (
	"net/http"
	"strings"
)

// authenticate verifies the Bearer token and puts the user id on the
// request context.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			respondMessage(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := s.auth.ParseToken(token)
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := ContextWithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken reads the token from the Authorization header.
// Accepts "Bearer <token>" or a raw token.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
