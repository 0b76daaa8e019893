package domain

import (
	"errors"
	"time"
)

// ErrInvalidRange возвращается, когда начало диапазона позже его конца
var ErrInvalidRange = errors.New("domain: start date is after end date")

// DateRange inclusive диапазон календарных дат
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange создает диапазон с валидацией границ
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// RangeForYear возвращает диапазон, покрывающий весь календарный год
func RangeForYear(year int) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// RangeForMonth возвращает диапазон, покрывающий весь календарный месяц
func RangeForMonth(year int, month time.Month) DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// Contains проверяет, что дата попадает в диапазон (включительно)
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}

// VenueBookingsFilter фильтр для получения бронирований салона
type VenueBookingsFilter struct {
	VenueID int64
	Range   DateRange
}

// DJBookingsFilter фильтр для получения бронирований диджея
type DJBookingsFilter struct {
	DJID  int64
	Range DateRange
}
