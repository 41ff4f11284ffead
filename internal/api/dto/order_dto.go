package dto

import "time"

// CartItemRequest payload for adding or updating a cart line.
type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CartResponse projection.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
}

// CartLineResponse projection of one cart line.
type CartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// PlaceOrderRequest payload.
type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

// UpdateOrderStatusRequest payload for the admin status endpoint.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse projection of a snapshot line.
type OrderItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse projection.
type OrderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	TotalCents      int64               `json:"total_cents"`
	DeliveryAddress string              `json:"delivery_address"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}
