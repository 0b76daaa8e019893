package create_booking

import (
	"time"

	createBooking "github.com/m04kA/DJB-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID int64  `json:"venueId"`
	Date    string `json:"date"` // "2025-10-15"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	DJID       int64  `json:"djId"`
	VenueID    int64  `json:"venueId"`
	Date       string `json:"date"`
	Confirmed  bool   `json:"confirmed"`
	RecordedAt string `json:"recordedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(djID int64) (*createBooking.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		DJID:    djID,
		VenueID: r.VenueID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		DJID:       resp.DJID,
		VenueID:    resp.VenueID,
		Date:       resp.Date,
		Confirmed:  resp.Confirmed,
		RecordedAt: resp.RecordedAt.Format(time.RFC3339),
	}
}
