package get_availability

import "time"

// Request входные данные запроса доступности
type Request struct {
	Date time.Time
}

// DJAvailability один диджей в разбиении на дату
type DJAvailability struct {
	DJID        int64       `json:"djId"`
	DisplayName string      `json:"displayName"`
	ColorTag    *string     `json:"colorTag,omitempty"`
	HomeVenueID *int64      `json:"homeVenueId,omitempty"`
	Bookings    []DJBooking `json:"bookings,omitempty"`
}

// DJBooking бронирование диджея на запрошенную дату
type DJBooking struct {
	BookingID int64  `json:"bookingId"`
	VenueID   int64  `json:"venueId"`
	VenueName string `json:"venueName"`
}

// Totals сводка разбиения: свободные + занятые = весь ростер
type Totals struct {
	Free   int `json:"free"`
	Booked int `json:"booked"`
	Roster int `json:"roster"`
}

// Response разбиение ростера на свободных и занятых на дату
type Response struct {
	Date   string           `json:"date"`
	Free   []DJAvailability `json:"free"`
	Booked []DJAvailability `json:"booked"`
	Totals Totals           `json:"totals"`
}
