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

// BookingHandler manages table reservation endpoints.
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler constructs handler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookingService}
}

// Create handles POST /api/booking.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	booking, err := h.bookings.Create(c.Context(), userID, service.BookingInput{
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Note:   req.Note,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"booking": bookingResponse(booking),
	})
}

// List handles GET /api/booking.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	userID, err := sessionSubject(c)
	if err != nil {
		return err
	}
	bookings, err := h.bookings.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"bookings": bookingResponses(bookings),
	})
}

// ListAll handles GET /api/booking/all (admin).
func (h *BookingHandler) ListAll(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	bookings, err := h.bookings.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"bookings": bookingResponses(bookings),
	})
}

// UpdateStatus handles PUT /api/booking/:id/status (admin).
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if req.Status == "" {
		return apperrors.NewValidationError("Status is required")
	}

	booking, err := h.bookings.UpdateStatus(c.Context(), c.Params("id"), domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking status updated",
		"booking": bookingResponse(booking),
	})
}

func bookingResponse(booking *domain.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        booking.ID,
		Date:      booking.Date,
		Time:      booking.Time,
		Guests:    booking.Guests,
		Note:      booking.Note,
		Status:    string(booking.Status),
		CreatedAt: booking.CreatedAt,
	}
}

func bookingResponses(bookings []domain.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingResponse(&bookings[i]))
	}
	return out
}
