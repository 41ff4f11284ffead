package domain

import "time"

// OrderStatus tracks the kitchen/delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// CanTransitionTo enforces forward-only progress; cancellation is
// allowed any time before delivery.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return s != OrderStatusDelivered && s != OrderStatusCancelled
	}
	switch s {
	case OrderStatusPlaced:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusPreparing
	case OrderStatusPreparing:
		return next == OrderStatusOutForDelivery
	case OrderStatusOutForDelivery:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// OrderItem snapshots a menu item at purchase time so later menu edits
// do not rewrite order history.
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	PriceCents int64
	Quantity   int
}

// Order is a placed purchase built from the user's cart.
type Order struct {
	ID              string
	Number          string
	UserID          string
	Status          OrderStatus
	TotalCents      int64
	DeliveryAddress string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
