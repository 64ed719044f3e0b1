package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ankitpatil/disha/internal/auth"
	"github.com/ankitpatil/disha/internal/domain"
)

// AuthMiddleware enforces bearer-token authentication and injects the
// verified user into the request context.
type AuthMiddleware struct {
	verifier *auth.Verifier
	logger   *slog.Logger
	disabled bool
}

// NewAuthMiddleware creates the auth middleware. With disabled set (local
// development) every request is attributed to a fixed local user instead of
// being verified.
func NewAuthMiddleware(verifier *auth.Verifier, logger *slog.Logger, disabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
		disabled: disabled,
	}
}

// Handler returns middleware that requires a valid bearer token.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			user := &domain.User{ID: "local-dev", Email: "dev@localhost", Name: "Local Developer"}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
			return
		}

		if m.verifier == nil {
			m.unauthorized(w, "auth verifier not configured")
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			m.logger.Info("auth failure: missing authorization header", "path", r.URL.Path)
			m.unauthorized(w, "missing authorization header")
			return
		}

		token, ok := extractBearerToken(header)
		if !ok {
			m.logger.Info("auth failure: malformed authorization header", "path", r.URL.Path)
			m.unauthorized(w, "invalid authorization header")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Info("auth failure: token invalid", "path", r.URL.Path, "error", err)
			m.unauthorized(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), claims.User())))
	})
}

func extractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
