package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// CategoryHandler manages menu category endpoints.
type CategoryHandler struct {
	menu *service.MenuService
}

// NewCategoryHandler constructs handler.
func NewCategoryHandler(menuService *service.MenuService) *CategoryHandler {
	return &CategoryHandler{menu: menuService}
}

// Create handles POST /api/category (admin).
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	category, err := h.menu.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Category created successfully",
		"category": categoryResponse(category),
	})
}

// List handles GET /api/category (public).
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.menu.ListCategories(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, categoryResponse(&categories[i]))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"categories": items,
	})
}

// Delete handles DELETE /api/category/:id (admin).
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.menu.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

func categoryResponse(category *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
