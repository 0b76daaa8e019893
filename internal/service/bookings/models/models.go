package models

import (
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// Request модели

// GetVenueBookingsRequest запрос на получение бронирований салона
// Период задается одним из способов (в порядке приоритета):
// явный диапазон StartDate/EndDate, год+месяц, целый год
type GetVenueBookingsRequest struct {
	VenueID   int64
	Year      int
	Month     *int
	StartDate *time.Time
	EndDate   *time.Time
}

// ToDomainFilter конвертирует request в domain фильтр с валидацией диапазона
func (r *GetVenueBookingsRequest) ToDomainFilter() (domain.VenueBookingsFilter, error) {
	dateRange, err := resolveRange(r.Year, r.Month, r.StartDate, r.EndDate)
	if err != nil {
		return domain.VenueBookingsFilter{}, err
	}

	return domain.VenueBookingsFilter{
		VenueID: r.VenueID,
		Range:   dateRange,
	}, nil
}

// GetDJBookingsRequest запрос на получение бронирований диджея
type GetDJBookingsRequest struct {
	DJID      int64
	Year      int
	Month     *int
	StartDate *time.Time
	EndDate   *time.Time
}

// ToDomainFilter конвертирует request в domain фильтр с валидацией диапазона
func (r *GetDJBookingsRequest) ToDomainFilter() (domain.DJBookingsFilter, error) {
	dateRange, err := resolveRange(r.Year, r.Month, r.StartDate, r.EndDate)
	if err != nil {
		return domain.DJBookingsFilter{}, err
	}

	return domain.DJBookingsFilter{
		DJID:  r.DJID,
		Range: dateRange,
	}, nil
}

// resolveRange выбирает диапазон дат из параметров запроса
// Явный диапазон требует обеих границ: полудиапазон и диапазон с началом
// позже конца отклоняются (domain.ErrInvalidRange)
func resolveRange(year int, month *int, startDate, endDate *time.Time) (domain.DateRange, error) {
	if startDate != nil || endDate != nil {
		if startDate == nil || endDate == nil {
			return domain.DateRange{}, domain.ErrInvalidRange
		}
		return domain.NewDateRange(*startDate, *endDate)
	}
	if month != nil {
		return domain.RangeForMonth(year, time.Month(*month)), nil
	}
	return domain.RangeForYear(year), nil
}

// Response модели

// BookingResponse ответ с данными бронирования
// Включает read-side данные диджея и салона для отображения
type BookingResponse struct {
	ID            int64     `json:"id"`
	DJID          int64     `json:"djId"`
	VenueID       int64     `json:"venueId"`
	Date          string    `json:"date"` // "2025-10-15"
	Confirmed     bool      `json:"confirmed"`
	RecordedAt    time.Time `json:"recordedAt"`
	DJDisplayName string    `json:"djDisplayName,omitempty"`
	DJColorTag    *string   `json:"djColorTag,omitempty"`
	VenueName     string    `json:"venueName,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		DJID:       b.DJID,
		VenueID:    b.VenueID,
		Date:       b.Date.Format(domain.DateFormat),
		Confirmed:  b.Confirmed,
		RecordedAt: b.RecordedAt,
	}
}

// FromDomainBookingWithNames конвертирует обогащённую domain модель в DTO
func FromDomainBookingWithNames(b *domain.BookingWithNames) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := FromDomainBooking(&b.Booking)
	resp.DJDisplayName = b.DJDisplayName
	resp.DJColorTag = b.DJColorTag
	resp.VenueName = b.VenueName

	return resp
}

// FromDomainBookingList конвертирует список обогащённых domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingWithNames) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBookingWithNames(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
