package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DJB-ScheduleService/pkg/metrics"
)

// promauto регистрирует коллекторы в глобальном registry,
// поэтому New вызывается один раз на тестовый бинарник
var m = metrics.New("test")

func TestIncBookingCreated(t *testing.T) {
	m.IncBookingCreated(10)
	m.IncBookingCreated(10)
	m.IncBookingCreated(11)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("10")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("11")))
}

func TestIncBookingDeleted(t *testing.T) {
	m.IncBookingDeleted(10)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsDeletedTotal.WithLabelValues("10")))
}

func TestIncBookingConflict(t *testing.T) {
	m.IncBookingConflict(metrics.ConflictDuplicate)
	m.IncBookingConflict(metrics.ConflictVenueFull)
	m.IncBookingConflict(metrics.ConflictVenueFull)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingConflictsTotal.WithLabelValues(metrics.ConflictDuplicate)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingConflictsTotal.WithLabelValues(metrics.ConflictVenueFull)))
}

// При выключенных метриках handlers получают nil — инкременты должны быть no-op
func TestIncrements_NilReceiver(t *testing.T) {
	var disabled *metrics.Metrics

	assert.NotPanics(t, func() {
		disabled.IncBookingCreated(1)
		disabled.IncBookingDeleted(1)
		disabled.IncBookingConflict(metrics.ConflictDuplicate)
	})
}
