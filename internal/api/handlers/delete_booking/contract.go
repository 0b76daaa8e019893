package delete_booking

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings/models"
)

type BookingService interface {
	Delete(ctx context.Context, bookingID, djID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
