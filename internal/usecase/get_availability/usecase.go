package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

// UseCase use case для разбиения ростера на свободных и занятых диджеев
type UseCase struct {
	bookingRepo BookingRepository
	djRepo      DJRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, djRepo DJRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		djRepo:      djRepo,
		logger:      logger,
	}
}

// Execute возвращает разбиение всего ростера на дату:
// каждый диджей попадает ровно в одну из частей, free + booked = roster
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date := types.NormalizeDate(req.Date)

	uc.logger.Info("GetAvailability: date=%s", date.Format(domain.DateFormat))

	// Разбиваем только рабочий ростер, администраторы не играют сетов
	roster, err := uc.djRepo.ListByRole(ctx, domain.RoleDJ)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list roster: %v", err)
		return nil, fmt.Errorf("%w: failed to list roster: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Группируем бронирования по диджеям
	byDJ := make(map[int64][]DJBooking, len(bookings))
	for _, b := range bookings {
		byDJ[b.DJID] = append(byDJ[b.DJID], DJBooking{
			BookingID: b.ID,
			VenueID:   b.VenueID,
			VenueName: b.VenueName,
		})
	}

	resp := &Response{
		Date:   date.Format(domain.DateFormat),
		Free:   make([]DJAvailability, 0, len(roster)),
		Booked: make([]DJAvailability, 0),
	}

	for _, dj := range roster {
		entry := DJAvailability{
			DJID:        dj.ID,
			DisplayName: dj.DisplayName,
			ColorTag:    dj.ColorTag,
			HomeVenueID: dj.HomeVenueID,
		}

		if djBookings, ok := byDJ[dj.ID]; ok {
			entry.Bookings = djBookings
			resp.Booked = append(resp.Booked, entry)
		} else {
			resp.Free = append(resp.Free, entry)
		}
	}

	resp.Totals = Totals{
		Free:   len(resp.Free),
		Booked: len(resp.Booked),
		Roster: len(roster),
	}

	uc.logger.Info("GetAvailability: date=%s, free=%d, booked=%d, roster=%d",
		resp.Date, resp.Totals.Free, resp.Totals.Booked, resp.Totals.Roster)

	return resp, nil
}
