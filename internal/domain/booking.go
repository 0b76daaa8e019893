package domain

import "time"

// Booking represents a confirmed reservation of one DJ at one venue on one date
//
// Invariants (enforced transactionally by the storage layer):
//   - no two bookings share the same (DJID, VenueID, Date) triple
//   - at most MaxDJsPerDay distinct DJs hold a booking for one (VenueID, Date)
//   - Date carries no time component (normalized to UTC midnight)
type Booking struct {
	ID         int64
	DJID       int64
	VenueID    int64
	Date       time.Time // Календарная дата без времени (UTC полночь)
	Confirmed  bool      // Всегда true при создании, черновиков нет
	RecordedAt time.Time
}

// BookingWithNames is a booking enriched with display data for read-side listings
// The join does not affect ledger invariants
type BookingWithNames struct {
	Booking
	DJDisplayName string
	DJColorTag    *string
	VenueName     string
}
