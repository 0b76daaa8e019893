package domain

import "time"

// Role represents the role of a roster entry
type Role string

const (
	RoleDJ    Role = "dj"
	RoleAdmin Role = "admin"
)

// IsValid returns true if the role is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleDJ || r == RoleAdmin
}

// DJ represents a roster entry
// Admin entries never carry a home venue (enforced on write)
type DJ struct {
	ID           int64
	DisplayName  string
	PasswordHash string
	Role         Role
	HomeVenueID  *int64 // Опциональная привязка к домашнему салону
	ColorTag     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin returns true if the roster entry has the admin role
func (d *DJ) IsAdmin() bool {
	return d.Role == RoleAdmin
}

// CanHaveHomeVenue returns true if a home venue may be assigned to this entry
func (d *DJ) CanHaveHomeVenue() bool {
	return d.Role == RoleDJ
}
