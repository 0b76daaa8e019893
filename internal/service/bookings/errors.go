package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или не принадлежит запрашивающему диджею (намеренно неразличимо)
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidRange возвращается при диапазоне с началом позже конца
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
