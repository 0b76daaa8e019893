package types

import (
	"errors"
	"time"
)

// DateFormat формат календарной даты без времени (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("types: invalid date format, expected YYYY-MM-DD")

// ParseDate парсит строку формата YYYY-MM-DD в нормализованную дату (UTC полночь)
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return NormalizeDate(t), nil
}

// NormalizeDate обнуляет компонент времени даты
// Две даты с одинаковым календарным днём, но разным временем суток,
// после нормализации всегда равны (инвариант хранения бронирований)
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate форматирует дату в строку YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay проверяет, что две даты относятся к одному и тому же календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
