package roster

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// DJRepository интерфейс репозитория ростера
type DJRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DJ, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.DJ, error)
	UpdateRosterFields(ctx context.Context, id int64, role domain.Role, homeVenueID *int64, colorTag *string) error
}

// VenueRepository интерфейс репозитория салонов (для проверки домашнего салона)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
