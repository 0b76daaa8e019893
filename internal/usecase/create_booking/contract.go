package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetDJIDsForVenueDate(ctx context.Context, venueID int64, date time.Time) ([]int64, error)
}

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// DJRepository интерфейс репозитория ростера
type DJRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DJ, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
