package compensation

import "errors"

var (
	// ErrDJNotFound возвращается, когда диджей не найден в ростере
	ErrDJNotFound = errors.New("dj not found")

	// ErrInvalidRange возвращается при диапазоне с началом позже конца
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
