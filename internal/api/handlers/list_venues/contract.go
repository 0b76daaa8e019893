package list_venues

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/service/venues/models"
)

type VenueService interface {
	List(ctx context.Context, activeOnly bool) (*models.VenueListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
