package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// Verification outcomes. Callers branch on these rather than inspecting
// library error strings.
var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrSignatureMismatch = errors.New("token signature mismatch")
)

// TokenManager issues and verifies signed session tokens. A single
// symmetric secret keeps the scheme stateless; the accepted tradeoff is
// that an issued token stays valid until expiry with no revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// SessionClaims describes the session token payload. User sessions set
// Subject+Role; the static admin session sets Email+Role instead.
type SessionClaims struct {
	Role  domain.SessionRole `json:"role"`
	Email string             `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token carries the admin role tag.
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// IssueUser signs a token for a registered account.
func (tm *TokenManager) IssueUser(userID string, role domain.SessionRole) (string, time.Time, error) {
	return tm.issue(SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
		},
	})
}

// IssueAdmin signs a token for the static admin identity.
func (tm *TokenManager) IssueAdmin(email string) (string, time.Time, error) {
	return tm.issue(SessionClaims{
		Role:  domain.RoleAdmin,
		Email: email,
	})
}

func (tm *TokenManager) issue(claims SessionClaims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks signature integrity and expiry, then returns the
// decoded claims. Role claims are only trusted after the HMAC check
// passes; the library compares signatures in constant time.
func (tm *TokenManager) Verify(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrSignatureMismatch
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureMismatch
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	if !claims.Role.Valid() {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
