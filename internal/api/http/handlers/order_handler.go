package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/dto"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/service"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

// OrderHandler manages order endpoints for users and admin.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orderService}
}

// Place handles POST /api/order.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	order, err := h.orders.Place(c.Context(), userID, req.DeliveryAddress)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully",
		"order":   orderResponse(order),
	})
}

// List handles GET /api/order.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	orders, err := h.orders.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orderResponses(orders),
	})
}

// Get handles GET /api/order/:id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	order, err := h.orders.GetForUser(c.Context(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"order":   orderResponse(order),
	})
}

// ListAll handles GET /api/order/all (admin).
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	orders, err := h.orders.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orderResponses(orders),
	})
}

// UpdateStatus handles PUT /api/order/:id/status (admin).
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Status == "" {
		return apperrors.NewValidationError("Status is required")
	}

	order, err := h.orders.UpdateStatus(c.Context(), c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order status updated",
		"order":   orderResponse(order),
	})
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		Number:          order.Number,
		Status:          string(order.Status),
		TotalCents:      order.TotalCents,
		DeliveryAddress: order.DeliveryAddress,
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orderResponse(&orders[i]))
	}
	return out
}
