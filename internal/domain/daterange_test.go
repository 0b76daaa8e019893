package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

func TestNewDateRange(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	r, err := domain.NewDateRange(start, end)

	require.NoError(t, err)
	assert.Equal(t, start, r.Start)
	assert.Equal(t, end, r.End)
}

func TestNewDateRange_StartAfterEnd(t *testing.T) {
	start := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := domain.NewDateRange(start, end)

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestNewDateRange_SingleDay(t *testing.T) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	r, err := domain.NewDateRange(day, day)

	require.NoError(t, err)
	assert.True(t, r.Contains(day))
}

func TestRangeForMonth(t *testing.T) {
	r := domain.RangeForMonth(2026, time.September)

	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), r.End)
}

// Февраль високосного года заканчивается 29-м
func TestRangeForMonth_LeapFebruary(t *testing.T) {
	r := domain.RangeForMonth(2028, time.February)

	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), r.End)
}

func TestRangeForYear(t *testing.T) {
	r := domain.RangeForYear(2026)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), r.End)
}

func TestDateRange_Contains(t *testing.T) {
	r := domain.RangeForMonth(2026, time.September)

	assert.True(t, r.Contains(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
}
