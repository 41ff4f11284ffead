package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies *auth.CookieWriter
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies *auth.CookieWriter) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Please fill all the fields")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Please fill all the fields")
	}

	if _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"success": true,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Please fill all the fields")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Please fill all the fields")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Set(c, token)
	return c.JSON(fiber.Map{
		"message": "User logged in successfully",
		"success": true,
		"user": dto.UserResponse{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// AdminLogin handles POST /api/auth/admin-login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Please fill all the fields")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Please fill all the fields")
	}

	token, _, err := h.auth.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Set(c, token)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin logged in successfully",
		"admin":   dto.AdminResponse{Email: h.auth.AdminEmail()},
	})
}

// Logout handles POST /api/auth/logout. The cookie is cleared with the
// same attributes it was set with; the token itself stays valid until
// expiry since there is no revocation store.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.JSON(fiber.Map{
		"message": "User logged out successfully",
		"success": true,
	})
}

// Profile handles GET /api/auth/profile and /api/auth/is-auth. Requires
// a verified session; the admin session has no account row behind it.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Not Authorized")
	}
	if claims.Subject == "" {
		return apperrors.NewNotFound("User not found")
	}

	user, err := h.auth.Profile(c.Context(), claims.Subject)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
