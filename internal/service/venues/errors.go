package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда салон не найден
	ErrVenueNotFound = errors.New("venue not found")

	// ErrDuplicateName возвращается при попытке создать салон с занятым именем
	ErrDuplicateName = errors.New("venue name already exists")

	// ErrAccessDenied возвращается, когда запрашивающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
