package get_dj_bookings

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings/models"
)

type BookingService interface {
	GetDJBookings(ctx context.Context, req *models.GetDJBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
