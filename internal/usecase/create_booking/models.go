package create_booking

import "time"

// Request входные данные создания бронирования
type Request struct {
	DJID    int64
	VenueID int64
	Date    time.Time
}

// Response созданное бронирование
type Response struct {
	ID         int64     `json:"id"`
	DJID       int64     `json:"djId"`
	VenueID    int64     `json:"venueId"`
	Date       string    `json:"date"`
	Confirmed  bool      `json:"confirmed"`
	RecordedAt time.Time `json:"recordedAt"`
}
