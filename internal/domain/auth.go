package domain

// SessionRole differentiates user vs admin sessions.
type SessionRole string

const (
	RoleUser  SessionRole = "user"
	RoleAdmin SessionRole = "admin"
)

// Valid reports whether the role is one of the known tags.
func (r SessionRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
