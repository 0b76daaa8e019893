package create_booking

import "errors"

var (
	// ErrDuplicateBooking возвращается, когда у диджея уже есть бронирование
	// этого салона на эту дату
	ErrDuplicateBooking = errors.New("booking already exists for this dj, venue and date")

	// ErrVenueFull возвращается, когда на дату в салоне уже занято максимальное число диджеев
	ErrVenueFull = errors.New("venue is fully booked for this date")

	// ErrVenueNotFound возвращается, когда салон не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrVenueInactive возвращается при попытке бронирования деактивированного салона
	ErrVenueInactive = errors.New("venue is inactive")

	// ErrDJNotFound возвращается, когда запись ростера не найдена
	ErrDJNotFound = errors.New("dj not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("usecase: internal error")
)
