package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{carts: cartService}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartResponse(cart),
	})
}

// AddItem handles POST /api/cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.MenuItemID == "" {
		return apperrors.NewValidationError("Menu item id is required")
	}

	cart, err := h.carts.AddItem(c.Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item added to cart",
		"cart":    cartResponse(cart),
	})
}

// UpdateItem handles PUT /api/cart. Quantity zero removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.MenuItemID == "" {
		return apperrors.NewValidationError("Menu item id is required")
	}

	cart, err := h.carts.SetQuantity(c.Context(), userID, req.MenuItemID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart updated",
		"cart":    cartResponse(cart),
	})
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	if err := h.carts.Clear(c.Context(), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart cleared",
	})
}

// sessionSubject returns the verified session's subject id. The static
// admin session carries no subject and cannot own a cart or order.
func sessionSubject(c *fiber.Ctx) (string, error) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("Not Authorized")
	}
	if claims.Subject == "" {
		return "", apperrors.NewForbidden("Account session required")
	}
	return claims.Subject, nil
}

func cartResponse(cart *domain.Cart) dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, dto.CartLineResponse{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}
	return dto.CartResponse{Lines: lines}
}
