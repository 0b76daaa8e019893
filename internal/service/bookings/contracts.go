package bookings

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	DeleteOwned(ctx context.Context, bookingID, djID int64) (*domain.Booking, error)
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.BookingWithNames, error)
	GetByDJWithFilter(ctx context.Context, filter domain.DJBookingsFilter) ([]*domain.BookingWithNames, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
