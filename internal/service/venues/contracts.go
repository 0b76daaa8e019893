package venues

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// VenueRepository интерфейс репозитория салонов
type VenueRepository interface {
	Create(ctx context.Context, venue *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Venue, error)
	Deactivate(ctx context.Context, id int64) error
}

// DJRepository интерфейс репозитория ростера (для проверки прав администратора)
type DJRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DJ, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
