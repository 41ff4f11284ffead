package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// MenuService coordinates category and menu item management.
type MenuService struct {
	categories repository.CategoryRepository
	menu       repository.MenuRepository
}

// NewMenuService constructs the service.
func NewMenuService(categories repository.CategoryRepository, menu repository.MenuRepository) *MenuService {
	return &MenuService{categories: categories, menu: menu}
}

// MenuItemInput describes creation/update payload for a dish.
type MenuItemInput struct {
	CategoryID  string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Available   bool
}

// CreateCategory adds a category, rejecting duplicates by name.
func (s *MenuService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("Category name is required")
	}
	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("Category already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	category := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// DeleteCategory removes a category. Menu items under it are removed by
// the schema's cascade.
func (s *MenuService) DeleteCategory(ctx context.Context, id string) error {
	err := s.categories.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Category not found")
	}
	return err
}

// CreateMenuItem adds a dish under an existing category.
func (s *MenuService) CreateMenuItem(ctx context.Context, input MenuItemInput) (*domain.MenuItem, error) {
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, err
	}

	item := &domain.MenuItem{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem replaces a dish's fields.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, input MenuItemInput) (*domain.MenuItem, error) {
	if err := validateMenuInput(input); err != nil {
		return nil, err
	}
	item, err := s.menu.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}

	item.CategoryID = input.CategoryID
	item.Name = input.Name
	item.Description = input.Description
	item.PriceCents = input.PriceCents
	item.ImageURL = input.ImageURL
	item.Available = input.Available

	if err := s.menu.Update(ctx, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Menu item not found")
		}
		return nil, err
	}
	return item, nil
}

// GetMenuItem fetches a single dish.
func (s *MenuService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := s.menu.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Menu item not found")
	}
	return item, err
}

// ListMenu returns dishes, optionally filtered by category.
func (s *MenuService) ListMenu(ctx context.Context, categoryID string) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, categoryID)
}

// DeleteMenuItem removes a dish.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	err := s.menu.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("Menu item not found")
	}
	return err
}

func validateMenuInput(input MenuItemInput) error {
	if strings.TrimSpace(input.Name) == "" || input.CategoryID == "" {
		return apperrors.NewValidationError("Name and category are required")
	}
	if input.PriceCents <= 0 {
		return apperrors.NewValidationError("Price must be positive")
	}
	return nil
}
