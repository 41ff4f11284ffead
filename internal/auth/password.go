package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/restaurant-service/internal/worker"
)

// ErrPasswordMismatch is the normal negative verification outcome, as
// opposed to a hashing fault.
var ErrPasswordMismatch = errors.New("password mismatch")

// Hasher wraps bcrypt with a configured cost. The CPU-bound work runs
// on the shared worker pool so request goroutines only wait, never
// crowd out unrelated traffic.
type Hasher struct {
	cost int
	pool *worker.HashPool
}

// NewHasher builds a hasher with the given work factor.
func NewHasher(cost int, pool *worker.HashPool) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost, pool: pool}
}

// Hash produces a salted one-way hash of the plaintext.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	var (
		hashed []byte
		err    error
	)
	if poolErr := h.pool.Do(ctx, func() {
		hashed, err = bcrypt.GenerateFromPassword([]byte(password), h.cost)
	}); poolErr != nil {
		return "", poolErr
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a plaintext against its stored hash. A mismatch is
// reported as ErrPasswordMismatch; bcrypt's own comparison is already
// timing-safe.
func (h *Hasher) Compare(ctx context.Context, hashed, password string) error {
	var err error
	if poolErr := h.pool.Do(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	}); poolErr != nil {
		return poolErr
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// AdminVerifier checks submitted credentials against the statically
// configured admin identity. This is a deliberately separate plaintext
// path from the hashed per-user flow; the comparison is constant-time
// but the stored secret is not hashed.
type AdminVerifier struct {
	email    string
	password string
}

// NewAdminVerifier builds the verifier from startup configuration.
func NewAdminVerifier(email, password string) *AdminVerifier {
	return &AdminVerifier{email: email, password: password}
}

// Verify reports whether the submitted pair matches the configured
// admin credentials. Unconfigured credentials never match.
func (v *AdminVerifier) Verify(email, password string) bool {
	if v.email == "" || v.password == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return emailOK && passOK
}

// Email exposes the configured admin email for the admin guard.
func (v *AdminVerifier) Email() string {
	return v.email
}
