package domain

import "time"

// Venue represents a bookable location ("salón")
// Venues are never hard-deleted: deactivation keeps historical bookings valid
type Venue struct {
	ID        int64
	Name      string
	Active    bool
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCoordinates returns true if both geo-coordinates are set
func (v *Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}
