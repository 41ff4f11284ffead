package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the fixed key the session token travels under.
const CookieName = "token"

// CookieWriter applies the session cookie contract: httpOnly always,
// secure + SameSite=None in production, SameSite=Lax otherwise.
// Clearing must reuse the exact same attributes or some clients keep
// the stale cookie.
type CookieWriter struct {
	production bool
	maxAge     time.Duration
}

// NewCookieWriter builds a writer for the deployment mode.
func NewCookieWriter(production bool, maxAge time.Duration) *CookieWriter {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &CookieWriter{production: production, maxAge: maxAge}
}

// Set attaches the session token to the response.
func (w *CookieWriter) Set(c *fiber.Ctx, token string) {
	cookie := w.base()
	cookie.Value = token
	cookie.MaxAge = int(w.maxAge.Seconds())
	cookie.Expires = time.Now().Add(w.maxAge)
	c.Cookie(cookie)
}

// Clear expires the session cookie with matching attributes.
func (w *CookieWriter) Clear(c *fiber.Ctx) {
	cookie := w.base()
	cookie.Value = ""
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
}

func (w *CookieWriter) base() *fiber.Cookie {
	sameSite := fiber.CookieSameSiteLaxMode
	if w.production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   w.production,
		SameSite: sameSite,
	}
}
