package compensation

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDJWithFilter(ctx context.Context, filter domain.DJBookingsFilter) ([]*domain.BookingWithNames, error)
}

// DJRepository интерфейс репозитория ростера
type DJRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DJ, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
