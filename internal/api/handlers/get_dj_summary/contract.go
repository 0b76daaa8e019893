package get_dj_summary

import (
	"context"
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

type CompensationService interface {
	GetMonthlySummary(ctx context.Context, djID int64, year int, month time.Month) (*domain.MonthlySummary, error)
	GetSummaryByRange(ctx context.Context, djID int64, startDate, endDate time.Time) (*domain.MonthlySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
