package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

const maxLineQuantity = 50

// CartService manages the per-user pending selection held in Redis.
type CartService struct {
	carts repository.CartRepository
	menu  repository.MenuRepository
}

// NewCartService constructs the service.
func NewCartService(carts repository.CartRepository, menu repository.MenuRepository) *CartService {
	return &CartService{carts: carts, menu: menu}
}

// Get returns the user's cart; an empty cart when nothing was added.
func (s *CartService) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.carts.Get(ctx, userID)
}

// AddItem increments the quantity of an available menu item.
func (s *CartService) AddItem(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("Quantity must be positive")
	}

	item, err := s.menu.GetByID(ctx, menuItemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, apperrors.NewValidationError("Menu item is not available")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := cart.Quantity(menuItemID) + quantity
	if total > maxLineQuantity {
		total = maxLineQuantity
	}
	cart.SetQuantity(menuItemID, total)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity pins a line's quantity; zero removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, menuItemID string, quantity int) (*domain.Cart, error) {
	if quantity < 0 || quantity > maxLineQuantity {
		return nil, apperrors.NewValidationError("Quantity out of range")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if quantity > 0 && cart.Quantity(menuItemID) == 0 {
		return nil, apperrors.NewNotFound("Item not in cart")
	}
	cart.SetQuantity(menuItemID, quantity)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}
