package domain

import "time"

// Category groups menu items for display.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem is a dish offered for ordering. Price is stored in cents to
// avoid floating point rounding in order totals.
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
