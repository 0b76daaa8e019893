package domain

// MonthlySummary derived compensation figures for a DJ over a period
// Computed on demand from bookings, never persisted
//
// For month queries Year/Month are set; for explicit date ranges they are zero
type MonthlySummary struct {
	DJID           int64
	Year           int
	Month          int
	TotalEvents    int
	DistinctVenues int
	ExtraEvents    int   // max(0, TotalEvents - base quota)
	ExtraRate      int64 // Ставка за событие сверх квоты, целые единицы валюты
	ExtraPay       int64 // ExtraEvents * ExtraRate
}
