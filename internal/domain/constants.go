package domain

// Capacity and compensation defaults
const (
	// MaxDJsPerDay максимум различных диджеев с бронированием на один салон и дату
	MaxDJsPerDay = 3

	// DefaultBaseQuota число событий в месяц, покрытых фиксированной ставкой
	// События сверх квоты оплачиваются отдельно
	DefaultBaseQuota = 8
)

// Business validation constants
const (
	MaxDisplayNameLength = 100
	MaxVenueNameLength   = 150
	MaxColorTagLength    = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
