package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/domain"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

const identityKey = "auth_identity"

// Middleware authenticates bearer tokens and binds the resulting Identity
// into the request scope.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the request authenticator.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle extracts and verifies the bearer token. A request without an
// Authorization header continues unauthenticated so that RequireIdentity can
// reject it as "no identity"; a present but unverifiable token short-circuits
// immediately, before any business logic runs.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewInvalidToken("invalid authorization header")
	}

	identity, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewInvalidToken("invalid or expired token")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// RequireIdentity rejects requests that reached a protected route without an
// authenticated identity.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthenticated()
		}
		return c.Next()
	}
}

// IdentityFromContext retrieves the authenticated identity for this request.
// The binding lives in fiber's per-request locals, so nothing leaks across
// concurrent requests and it is dropped when the request ends.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}
