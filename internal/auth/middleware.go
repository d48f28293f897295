package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	userdomain "github.com/theflightrs/Speedchannel-Ultimate/internal/user"
	apperrors "github.com/theflightrs/Speedchannel-Ultimate/pkg/errors"
	"github.com/theflightrs/Speedchannel-Ultimate/pkg/logger"
)

// Middleware authenticates requests: bearer token -> user row -> context.
// Deactivated accounts are rejected here so no usecase ever sees one.
type Middleware struct {
	tokens *TokenManager
	users  userdomain.UserRepository
	logger *logger.Logger
}

func NewMiddleware(tokens *TokenManager, users userdomain.UserRepository, logger *logger.Logger) *Middleware {
	return &Middleware{tokens: tokens, users: users, logger: logger}
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			m.deny(w)
			return
		}

		userID, err := m.tokens.Verify(raw)
		if err != nil {
			m.deny(w)
			return
		}

		u, err := m.users.GetUserByID(r.Context(), userID)
		if err != nil || !u.IsActive {
			m.deny(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func (m *Middleware) deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": apperrors.ErrNotAuthenticated.Error(),
	})
}
