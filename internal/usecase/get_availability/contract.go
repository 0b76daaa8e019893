package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BookingWithNames, error)
}

// DJRepository интерфейс репозитория ростера
type DJRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.DJ, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
