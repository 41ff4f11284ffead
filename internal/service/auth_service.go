package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	"github.com/spec-kit/restaurant-service/internal/worker"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// AuthService coordinates registration and login flows. The admin path
// verifies against static configured credentials while the user path
// verifies against stored bcrypt hashes; callers cannot tell which was
// used beyond the role in the issued token.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	hasher     *auth.Hasher
	admin      *auth.AdminVerifier
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	HashPool   *worker.HashPool
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		hasher:     auth.NewHasher(cfg.Auth.BcryptCost, deps.HashPool),
		admin:      auth.NewAdminVerifier(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword),
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new customer account. Registration does not log
// the user in; no token is issued.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDomainError("USER_EXISTS", "User already exists", http.StatusBadRequest)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{Name: user.Name, Email: user.Email},
		})
	}
	return user, nil
}

// Login authenticates a customer and issues a session token carrying
// the subject id and role established here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.NewNotFound("User does not exist")
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.IssueUser(user.ID, user.Role())
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// AdminLogin authenticates against the static admin credentials and
// issues an email-bearing admin token.
func (s *AuthService) AdminLogin(_ context.Context, email, password string) (string, time.Time, error) {
	if !s.admin.Verify(email, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}
	return s.tokenMgr.IssueAdmin(s.admin.Email())
}

// Profile fetches the identity behind a verified session. A valid
// token whose account row has since vanished is reported as not found.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for the session guard.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// AdminEmail exposes the configured admin email for the admin guard.
func (s *AuthService) AdminEmail() string {
	return s.admin.Email()
}
