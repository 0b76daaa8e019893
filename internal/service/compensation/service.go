package compensation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
)

// Service расчет вознаграждения по числу бронирований за период
//
// Правило: события сверх базовой квоты оплачиваются по ставке extraRate,
// extraEvents = max(0, total - baseQuota), extraPay = extraEvents * extraRate.
// Вся арифметика в целых единицах валюты, без плавающей точки
type Service struct {
	bookingRepo BookingRepository
	djRepo      DJRepository
	baseQuota   int
	extraRate   int64
	logger      Logger
}

// NewService создает новый экземпляр сервиса вознаграждения
// baseQuota и extraRate приходят из конфигурации; в доменном слое
// литералов ставки нет
func NewService(bookingRepo BookingRepository, djRepo DJRepository, baseQuota int, extraRate int64, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		djRepo:      djRepo,
		baseQuota:   baseQuota,
		extraRate:   extraRate,
		logger:      logger,
	}
}

// GetMonthlySummary считает сводку диджея за календарный месяц
// Ноль бронирований - валидная сводка с нулями, а не ошибка
func (s *Service) GetMonthlySummary(ctx context.Context, djID int64, year int, month time.Month) (*domain.MonthlySummary, error) {
	s.logger.Info("GetMonthlySummary: dj=%d, year=%d, month=%d", djID, year, month)

	if djID <= 0 {
		return nil, fmt.Errorf("%w: djID must be positive", ErrInvalidInput)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}

	summary, err := s.summarize(ctx, djID, domain.RangeForMonth(year, month))
	if err != nil {
		return nil, err
	}

	summary.Year = year
	summary.Month = int(month)

	s.logger.Info("GetMonthlySummary: dj=%d %d-%02d: total=%d, extra=%d, pay=%d",
		djID, year, month, summary.TotalEvents, summary.ExtraEvents, summary.ExtraPay)
	return summary, nil
}

// GetSummaryByRange считает сводку диджея за произвольный диапазон дат
// Диапазон с началом позже конца отклоняется на границе
func (s *Service) GetSummaryByRange(ctx context.Context, djID int64, startDate, endDate time.Time) (*domain.MonthlySummary, error) {
	s.logger.Info("GetSummaryByRange: dj=%d, period=%s to %s",
		djID, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))

	if djID <= 0 {
		return nil, fmt.Errorf("%w: djID must be positive", ErrInvalidInput)
	}

	dateRange, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		s.logger.Warn("GetSummaryByRange: invalid range for dj=%d", djID)
		return nil, ErrInvalidRange
	}

	summary, err := s.summarize(ctx, djID, dateRange)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetSummaryByRange: dj=%d: total=%d, extra=%d, pay=%d",
		djID, summary.TotalEvents, summary.ExtraEvents, summary.ExtraPay)
	return summary, nil
}

func (s *Service) summarize(ctx context.Context, djID int64, dateRange domain.DateRange) (*domain.MonthlySummary, error) {
	// Проверяем, что диджей есть в ростере
	if _, err := s.djRepo.GetByID(ctx, djID); err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			s.logger.Warn("summarize: dj=%d not found", djID)
			return nil, ErrDJNotFound
		}
		s.logger.Error("summarize: roster error for dj=%d: %v", djID, err)
		return nil, fmt.Errorf("%w: summarize - roster error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByDJWithFilter(ctx, domain.DJBookingsFilter{
		DJID:  djID,
		Range: dateRange,
	})
	if err != nil {
		s.logger.Error("summarize: repository error for dj=%d: %v", djID, err)
		return nil, fmt.Errorf("%w: summarize - repository error: %v", ErrInternal, err)
	}

	venues := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		venues[b.VenueID] = struct{}{}
	}

	totalEvents := len(bookings)
	extraEvents := totalEvents - s.baseQuota
	if extraEvents < 0 {
		extraEvents = 0
	}

	return &domain.MonthlySummary{
		DJID:           djID,
		TotalEvents:    totalEvents,
		DistinctVenues: len(venues),
		ExtraEvents:    extraEvents,
		ExtraRate:      s.extraRate,
		ExtraPay:       int64(extraEvents) * s.extraRate,
	}, nil
}
