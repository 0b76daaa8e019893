package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/booking"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	venueRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	djRepo       DJRepository
	txManager    TransactionManager
	maxDJsPerDay int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	djRepo DJRepository,
	txManager TransactionManager,
	maxDJsPerDay int,
	logger Logger,
) *UseCase {
	if maxDJsPerDay <= 0 {
		maxDJsPerDay = domain.MaxDJsPerDay
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		djRepo:       djRepo,
		txManager:    txManager,
		maxDJsPerDay: maxDJsPerDay,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// две конкурентные заявки на последнее место не могут пройти одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: dj=%d, venue=%d, date=%s",
		req.DJID, req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату к полуночи UTC - журнал хранит только календарные дни
	date := types.NormalizeDate(req.Date)

	// 3. Проверяем запись ростера
	if _, err := uc.djRepo.GetByID(ctx, req.DJID); err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			uc.logger.Warn("CreateBooking: dj=%d not found", req.DJID)
			return nil, ErrDJNotFound
		}
		uc.logger.Error("CreateBooking: failed to get dj=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: failed to get dj: %v", ErrInternal, err)
	}

	// 4. Проверяем салон
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.Active {
		uc.logger.Warn("CreateBooking: venue=%d is inactive", req.VenueID)
		return nil, ErrVenueInactive
	}

	var result *domain.Booking

	// 5. Проверка дубликата, вместимости и вставка - в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем бронирования салона на эту дату (FOR UPDATE)
		djIDs, err := uc.bookingRepo.GetDJIDsForVenueDate(txCtx, req.VenueID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for venue=%d date=%s: %v",
				req.VenueID, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Проверяем дубликат и считаем занятые места
		// dj_id могут повторяться только в гипотетическом грязном состоянии,
		// поэтому считаем именно различных диджеев
		distinct := make(map[int64]struct{}, len(djIDs))
		for _, id := range djIDs {
			if id == req.DJID {
				uc.logger.Warn("CreateBooking: dj=%d already booked venue=%d on %s",
					req.DJID, req.VenueID, date.Format(domain.DateFormat))
				return ErrDuplicateBooking
			}
			distinct[id] = struct{}{}
		}

		// При maxDJsPerDay = 3 допустимо 0, 1 или 2 занятых места
		if len(distinct) >= uc.maxDJsPerDay {
			uc.logger.Warn("CreateBooking: venue=%d full on %s, %d/%d spots taken",
				req.VenueID, date.Format(domain.DateFormat), len(distinct), uc.maxDJsPerDay)
			return ErrVenueFull
		}

		uc.logger.Info("CreateBooking: venue=%d has room on %s, %d/%d spots taken",
			req.VenueID, date.Format(domain.DateFormat), len(distinct), uc.maxDJsPerDay)

		// 5.3. Создаем бронирование
		booking := &domain.Booking{
			DJID:      req.DJID,
			VenueID:   req.VenueID,
			Date:      date,
			Confirmed: true,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Constraint в БД - последняя линия обороны от гонки
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return ErrDuplicateBooking
			}
			if errors.Is(err, bookingRepo.ErrVenueNotFound) {
				return ErrVenueNotFound
			}
			if errors.Is(err, bookingRepo.ErrDJNotFound) {
				return ErrDJNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		DJID:       result.DJID,
		VenueID:    result.VenueID,
		Date:       result.Date.Format(domain.DateFormat),
		Confirmed:  result.Confirmed,
		RecordedAt: result.RecordedAt,
	}, nil
}
