package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// MenuHandler manages menu item endpoints.
type MenuHandler struct {
	menu *service.MenuService
}

// NewMenuHandler constructs handler.
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menuService}
}

// Create handles POST /api/menu (admin).
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	input, err := parseMenuInput(c)
	if err != nil {
		return err
	}
	item, err := h.menu.CreateMenuItem(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Menu item created successfully",
		"item":    menuItemResponse(item),
	})
}

// List handles GET /api/menu (public), optionally filtered by category.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.menu.ListMenu(c.Context(), c.Query("category"))
	if err != nil {
		return err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, menuItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"items":   out,
	})
}

// Get handles GET /api/menu/:id (public).
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.menu.GetMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"item":    menuItemResponse(item),
	})
}

// Update handles PUT /api/menu/:id (admin).
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	input, err := parseMenuInput(c)
	if err != nil {
		return err
	}
	item, err := h.menu.UpdateMenuItem(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu item updated successfully",
		"item":    menuItemResponse(item),
	})
}

// Delete handles DELETE /api/menu/:id (admin).
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.menu.DeleteMenuItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}

func parseMenuInput(c *fiber.Ctx) (service.MenuItemInput, error) {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return service.MenuItemInput{}, apperrors.NewValidationError("Invalid payload")
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return service.MenuItemInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Available:   available,
	}, nil
}

func menuItemResponse(item *domain.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
	}
}
