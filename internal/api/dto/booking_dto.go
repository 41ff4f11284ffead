package dto

import "time"

// CreateBookingRequest payload for a table reservation.
type CreateBookingRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
	Note   string `json:"note"`
}

// UpdateBookingStatusRequest payload for the admin status endpoint.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse projection.
type BookingResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Note      string    `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
