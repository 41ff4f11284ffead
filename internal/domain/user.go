package domain

import "time"

// User is the domain model for registered customers. Admin access is a
// flag on the account rather than a separate entity.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role returns the coarse authorization tag carried in session tokens.
func (u *User) Role() SessionRole {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}
