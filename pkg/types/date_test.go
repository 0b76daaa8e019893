package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

func TestParseDate(t *testing.T) {
	date, err := types.ParseDate("2026-09-12")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "12.09.2026", "2026-13-40", "2026-09-12T10:00:00Z", "tomorrow"} {
		_, err := types.ParseDate(input)
		assert.ErrorIs(t, err, types.ErrInvalidDateFormat, "input %q", input)
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	input := time.Date(2026, 9, 12, 18, 45, 11, 999, loc)

	normalized := types.NormalizeDate(input)

	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), normalized)
}

// Один календарный день с разным временем суток нормализуется в равные значения
func TestNormalizeDate_SameDayEqual(t *testing.T) {
	morning := time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 12, 23, 59, 59, 0, time.UTC)

	assert.True(t, types.NormalizeDate(morning).Equal(types.NormalizeDate(evening)))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-09-02", types.FormatDate(date))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 9, 12, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 12, 23, 0, 0, 0, time.UTC)
	c := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, types.SameDay(a, b))
	assert.False(t, types.SameDay(a, c))
}
