package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings"
	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings/models"
	"github.com/m04kA/DJB-ScheduleService/pkg/ptr"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) DeleteOwned(ctx context.Context, bookingID, djID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, djID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.BookingWithNames, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithNames), args.Error(1)
}

func (m *MockBookingRepository) GetByDJWithFilter(ctx context.Context, filter domain.DJBookingsFilter) ([]*domain.BookingWithNames, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithNames), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestDelete_Success(t *testing.T) {
	repo := new(MockBookingRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	repo.On("DeleteOwned", mock.Anything, int64(5), int64(1)).Return(&domain.Booking{
		ID: 5, DJID: 1, VenueID: 10, Date: date, Confirmed: true,
	}, nil)

	svc := bookings.NewService(repo, nopLogger{})

	deleted, err := svc.Delete(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted.ID)
	assert.Equal(t, "2026-09-12", deleted.Date)
	repo.AssertExpectations(t)
}

// Чужое бронирование неотличимо от несуществующего
func TestDelete_NotOwnedLooksLikeNotFound(t *testing.T) {
	repo := new(MockBookingRepository)

	repo.On("DeleteOwned", mock.Anything, int64(5), int64(2)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := bookings.NewService(repo, nopLogger{})

	_, err := svc.Delete(context.Background(), 5, 2)

	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestDelete_InvalidIDs(t *testing.T) {
	svc := bookings.NewService(new(MockBookingRepository), nopLogger{})

	_, err := svc.Delete(context.Background(), 0, 1)
	assert.ErrorIs(t, err, bookings.ErrInvalidInput)

	_, err = svc.Delete(context.Background(), 5, -1)
	assert.ErrorIs(t, err, bookings.ErrInvalidInput)
}

func TestGetVenueBookings_MonthRange(t *testing.T) {
	repo := new(MockBookingRepository)

	monthStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	repo.On("GetByVenueWithFilter", mock.Anything, mock.MatchedBy(func(f domain.VenueBookingsFilter) bool {
		return f.VenueID == 10 && f.Range.Start.Equal(monthStart) && f.Range.End.Equal(monthEnd)
	})).Return([]*domain.BookingWithNames{
		{
			Booking:       domain.Booking{ID: 1, DJID: 1, VenueID: 10, Date: monthStart, Confirmed: true},
			DJDisplayName: "Алиса",
			VenueName:     "Луна",
		},
	}, nil)

	svc := bookings.NewService(repo, nopLogger{})

	result, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{
		VenueID: 10,
		Year:    2026,
		Month:   ptr.Ptr(9),
	})

	require.NoError(t, err)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, "Алиса", result.Bookings[0].DJDisplayName)
	assert.Equal(t, "Луна", result.Bookings[0].VenueName)
	repo.AssertExpectations(t)
}

// Явный диапазон имеет приоритет над year/month
func TestGetVenueBookings_ExplicitRangeWins(t *testing.T) {
	repo := new(MockBookingRepository)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	repo.On("GetByVenueWithFilter", mock.Anything, mock.MatchedBy(func(f domain.VenueBookingsFilter) bool {
		return f.Range.Start.Equal(start) && f.Range.End.Equal(end)
	})).Return([]*domain.BookingWithNames{}, nil)

	svc := bookings.NewService(repo, nopLogger{})

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{
		VenueID:   10,
		Year:      2026,
		Month:     ptr.Ptr(9),
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetVenueBookings_InvalidRange(t *testing.T) {
	svc := bookings.NewService(new(MockBookingRepository), nopLogger{})

	start := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{
		VenueID:   10,
		Year:      2026,
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, bookings.ErrInvalidRange)
}

// Полудиапазон (только одна из границ) отклоняется, а не игнорируется
func TestGetVenueBookings_HalfRangeRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := bookings.NewService(repo, nopLogger{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetVenueBookings(context.Background(), &models.GetVenueBookingsRequest{
		VenueID:   10,
		Year:      2026,
		StartDate: &start,
	})

	assert.ErrorIs(t, err, bookings.ErrInvalidRange)
	repo.AssertNotCalled(t, "GetByVenueWithFilter", mock.Anything, mock.Anything)
}

func TestGetDJBookings_HalfRangeRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := bookings.NewService(repo, nopLogger{})

	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetDJBookings(context.Background(), &models.GetDJBookingsRequest{
		DJID:    1,
		Year:    2026,
		EndDate: &end,
	})

	assert.ErrorIs(t, err, bookings.ErrInvalidRange)
	repo.AssertNotCalled(t, "GetByDJWithFilter", mock.Anything, mock.Anything)
}

func TestGetDJBookings_YearRange(t *testing.T) {
	repo := new(MockBookingRepository)

	yearStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	repo.On("GetByDJWithFilter", mock.Anything, mock.MatchedBy(func(f domain.DJBookingsFilter) bool {
		return f.DJID == 1 && f.Range.Start.Equal(yearStart) && f.Range.End.Equal(yearEnd)
	})).Return([]*domain.BookingWithNames{}, nil)

	svc := bookings.NewService(repo, nopLogger{})

	result, err := svc.GetDJBookings(context.Background(), &models.GetDJBookingsRequest{
		DJID: 1,
		Year: 2026,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Bookings)
	repo.AssertExpectations(t)
}
