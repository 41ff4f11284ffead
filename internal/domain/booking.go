package domain

import "time"

// BookingStatus tracks table reservation state.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether the status is a known value.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a table reservation request.
type Booking struct {
	ID        string
	UserID    string
	Date      string
	Time      string
	Guests    int
	Note      string
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
