package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// Покрывает и случай чужого бронирования: (id, dj_id) не совпали
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking возвращается при нарушении уникальности (dj_id, venue_id, date)
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking")

	// ErrVenueNotFound возвращается при нарушении внешнего ключа на салон
	ErrVenueNotFound = errors.New("booking.repository: venue not found")

	// ErrDJNotFound возвращается при нарушении внешнего ключа на диджея
	ErrDJNotFound = errors.New("booking.repository: dj not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
