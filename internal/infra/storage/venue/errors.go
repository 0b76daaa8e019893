package venue

import "errors"

var (
	// ErrVenueNotFound возвращается, когда салон не найден
	ErrVenueNotFound = errors.New("venue.repository: venue not found")

	// ErrDuplicateName возвращается при попытке создать салон с занятым именем
	ErrDuplicateName = errors.New("venue.repository: venue name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("venue.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("venue.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("venue.repository: failed to scan row")
)
