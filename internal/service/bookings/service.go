package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings/models"
)

// Service сервис read-side операций журнала и удаления бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Delete удаляет бронирование от имени диджея-владельца
// Проверка владения выполняется тем же запросом, что и удаление:
// чужое бронирование неотличимо от несуществующего, чтобы не раскрывать
// чужие записи по перебору ID
// Возвращает удалённую строку для подтверждающего сообщения
func (s *Service) Delete(ctx context.Context, bookingID, djID int64) (*models.BookingResponse, error) {
	s.logger.Info("Delete: deleting booking id=%d by dj=%d", bookingID, djID)

	if bookingID <= 0 || djID <= 0 {
		s.logger.Warn("Delete: invalid ids booking=%d dj=%d", bookingID, djID)
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	deleted, err := s.bookingRepo.DeleteOwned(ctx, bookingID, djID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found for dj=%d", bookingID, djID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d (venue=%d, date=%s)",
		deleted.ID, deleted.VenueID, deleted.Date.Format(domain.DateFormat))
	return models.FromDomainBooking(deleted), nil
}

// GetVenueBookings получает бронирования салона за период
// Строки обогащены именем диджея, его цветом и названием салона
func (s *Service) GetVenueBookings(ctx context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVenueBookings: venue=%d, year=%d, month=%v", req.VenueID, req.Year, req.Month)

	if req.VenueID <= 0 {
		s.logger.Warn("GetVenueBookings: invalid venue id=%d", req.VenueID)
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			s.logger.Warn("GetVenueBookings: invalid range for venue=%d", req.VenueID)
			return nil, ErrInvalidRange
		}
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	result, err := s.bookingRepo.GetByVenueWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVenueBookings: successfully fetched %d bookings for venue=%d", len(result), req.VenueID)
	return models.FromDomainBookingList(result), nil
}

// GetDJBookings получает бронирования диджея за период
// Симметричный запрос к GetVenueBookings со стороны диджея
func (s *Service) GetDJBookings(ctx context.Context, req *models.GetDJBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDJBookings: dj=%d, year=%d, month=%v", req.DJID, req.Year, req.Month)

	if req.DJID <= 0 {
		s.logger.Warn("GetDJBookings: invalid dj id=%d", req.DJID)
		return nil, fmt.Errorf("%w: djID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			s.logger.Warn("GetDJBookings: invalid range for dj=%d", req.DJID)
			return nil, ErrInvalidRange
		}
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	result, err := s.bookingRepo.GetByDJWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDJBookings: repository error for dj=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: GetDJBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDJBookings: successfully fetched %d bookings for dj=%d", len(result), req.DJID)
	return models.FromDomainBookingList(result), nil
}
