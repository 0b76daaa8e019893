package roster

import "errors"

var (
	// ErrDJNotFound возвращается, когда запись ростера не найдена
	ErrDJNotFound = errors.New("dj not found")

	// ErrVenueNotFound возвращается, когда домашний салон не найден
	ErrVenueNotFound = errors.New("home venue not found")

	// ErrAccessDenied возвращается, когда запрашивающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrAdminHomeVenue возвращается при попытке назначить администратору домашний салон
	ErrAdminHomeVenue = errors.New("admin roster entries cannot carry a home venue")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
