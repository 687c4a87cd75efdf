package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/viddeck/viddeck/internal/service"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext extracts the authenticated identity from the
// request context. The second return is false when the request was not
// authenticated.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(service.Identity)
	return identity, ok
}

// Outcome is the result of evaluating a request's bearer token: either
// allowed with a decoded identity, or rejected with a reason suitable
// for the response body.
type Outcome struct {
	Allowed  bool
	Identity service.Identity
	Reason   string
}

// AuthMiddleware gates protected routes on a valid bearer token.
type AuthMiddleware struct {
	tokens *service.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(tokens *service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate inspects the Authorization header and verifies the
// bearer token. It never writes to the response; callers decide how to
// short-circuit on a rejection. A missing token and a bad token get
// distinct reasons, but both map to 401 at the transport layer.
func (m *AuthMiddleware) Authenticate(r *http.Request) Outcome {
	token := bearerToken(r)
	if token == "" {
		return Outcome{Reason: "No token provided"}
	}
	identity, err := m.tokens.Verify(token)
	if err != nil {
		return Outcome{Reason: "Invalid or expired token"}
	}
	return Outcome{Allowed: true, Identity: identity}
}

// Require wraps next, responding 401 unless Authenticate allows the
// request, in which case the identity is attached to the context.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outcome := m.Authenticate(r)
		if !outcome.Allowed {
			writeError(w, http.StatusUnauthorized, outcome.Reason)
			return
		}
		ctx := context.WithValue(r.Context(), identityContextKey, outcome.Identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
