package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// OrderService turns carts into orders and drives the order lifecycle.
type OrderService struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	menu       repository.MenuRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles repositories for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	CartRepo   repository.CartRepository
	MenuRepo   repository.MenuRepository
	Dispatcher events.Dispatcher
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		carts:      deps.CartRepo,
		menu:       deps.MenuRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Place snapshots the user's cart into an order at current menu prices
// and clears the cart. Items that went unavailable since being added
// fail the whole order rather than silently shrinking it.
func (s *OrderService) Place(ctx context.Context, userID, deliveryAddress string) (*domain.Order, error) {
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, apperrors.NewValidationError("Delivery address is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, apperrors.NewValidationError("Cart is empty")
	}

	order := &domain.Order{
		Number:          uuid.NewString(),
		UserID:          userID,
		Status:          domain.OrderStatusPlaced,
		DeliveryAddress: deliveryAddress,
	}
	for _, line := range cart.Lines {
		item, err := s.menu.GetByID(ctx, line.MenuItemID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("Cart contains an item that no longer exists")
		}
		if err != nil {
			return nil, err
		}
		if !item.Available {
			return nil, apperrors.NewValidationError("Cart contains an unavailable item: " + item.Name)
		}
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   line.Quantity,
		})
		order.TotalCents += item.PriceCents * int64(line.Quantity)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPlaced,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.OrderPlacedPayload{
				OrderID:    order.ID,
				Number:     order.Number,
				TotalCents: order.TotalCents,
				ItemCount:  len(order.Items),
			},
		})
	}
	return order, nil
}

// GetForUser fetches an order owned by the caller. Another user's order
// is reported as not found rather than forbidden, so ids cannot be probed.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.NewNotFound("Order not found")
	}
	return order, nil
}

// ListForUser returns the caller's order history.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListAll returns orders across users for the admin dashboard.
func (s *OrderService) ListAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return s.orders.ListAll(ctx, limit, offset)
}

// UpdateStatus advances an order through its lifecycle.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperrors.NewValidationError("Invalid status transition")
	}

	old := order.Status
	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}
	order.Status = next

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderStatusChanged,
			UserID:    order.UserID,
			Timestamp: time.Now(),
			Payload: events.OrderStatusChangedPayload{
				OrderID:   order.ID,
				OldStatus: old,
				NewStatus: next,
			},
		})
	}
	return order, nil
}
