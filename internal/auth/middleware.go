package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

const claimsKey = "session_claims"

// SessionGuard validates the session cookie and loads claims. It is
// the only code allowed to inspect the raw token; handlers read the
// decoded claims from the request context.
type SessionGuard struct {
	tokens     *TokenManager
	adminEmail string
}

// NewSessionGuard constructs the guard.
func NewSessionGuard(tokens *TokenManager, adminEmail string) *SessionGuard {
	return &SessionGuard{tokens: tokens, adminEmail: adminEmail}
}

// RequireUser enforces a verified session for protected routes.
func (g *SessionGuard) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.verify(c)
		if err != nil {
			return err
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin enforces a verified session whose email claim equals the
// configured admin email. A structurally valid user token is rejected
// with 403: valid is not the same as privileged.
func (g *SessionGuard) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.verify(c)
		if err != nil {
			return err
		}
		if g.adminEmail == "" || claims.Email != g.adminEmail {
			return apperrors.NewForbidden("Admins only")
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func (g *SessionGuard) verify(c *fiber.Ctx) (*SessionClaims, error) {
	token := c.Cookies(CookieName)
	if token == "" {
		return nil, apperrors.NewUnauthorized("Not Authorized")
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid token")
	}
	return claims, nil
}

// ClaimsFromContext retrieves the verified session claims.
func ClaimsFromContext(c *fiber.Ctx) (*SessionClaims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*SessionClaims)
	return claims, ok
}
