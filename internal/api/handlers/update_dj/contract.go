package update_dj

import (
	"context"

	"github.com/m04kA/DJB-ScheduleService/internal/service/roster/models"
)

type RosterService interface {
	Update(ctx context.Context, req *models.UpdateRosterEntryRequest) (*models.DJResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
