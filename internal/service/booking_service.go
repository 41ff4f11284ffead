package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/events"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util"
)

const maxBookingGuests = 20

// BookingService manages table reservations.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(bookings repository.BookingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, dispatcher: dispatcher}
}

// BookingInput describes a reservation request.
type BookingInput struct {
	Date   string
	Time   string
	Guests int
	Note   string
}

// Create records a pending reservation for the user.
func (s *BookingService) Create(ctx context.Context, userID string, input BookingInput) (*domain.Booking, error) {
	if input.Date == "" || input.Time == "" {
		return nil, apperrors.NewValidationError("Date and time are required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, apperrors.NewValidationError("Date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return nil, apperrors.NewValidationError("Time must be HH:MM")
	}
	if input.Guests < 1 || input.Guests > maxBookingGuests {
		return nil, apperrors.NewValidationError("Guests must be between 1 and 20")
	}

	booking := &domain.Booking{
		UserID: userID,
		Date:   input.Date,
		Time:   input.Time,
		Guests: input.Guests,
		Note:   input.Note,
		Status: domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingCreated,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.BookingCreatedPayload{
				BookingID: booking.ID,
				Date:      booking.Date,
				Time:      booking.Time,
				Guests:    booking.Guests,
			},
		})
	}
	return booking, nil
}

// ListForUser returns the caller's reservations.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ListAll returns reservations across users for the admin dashboard.
func (s *BookingService) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx, limit, offset)
}

// UpdateStatus confirms or cancels a reservation.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, apperrors.NewValidationError("Unknown booking status")
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("Booking not found")
	}
	if err != nil {
		return nil, err
	}

	old := booking.Status
	if err := s.bookings.UpdateStatus(ctx, booking.ID, next); err != nil {
		return nil, err
	}
	booking.Status = next

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventBookingStatusChanged,
			UserID:    booking.UserID,
			Timestamp: time.Now(),
			Payload: events.BookingStatusChangedPayload{
				BookingID: booking.ID,
				OldStatus: old,
				NewStatus: next,
			},
		})
	}
	return booking, nil
}
