package create_booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/booking"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	venueRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/venue"
	createBooking "github.com/m04kA/DJB-ScheduleService/internal/usecase/create_booking"
)

// Mock implementations

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetDJIDsForVenueDate(ctx context.Context, venueID int64, date time.Time) ([]int64, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockDJRepository struct {
	mock.Mock
}

func (m *MockDJRepository) GetByID(ctx context.Context, id int64) (*domain.DJ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DJ), args.Error(1)
}

// serialTxManager эмулирует сериализуемые транзакции глобальной блокировкой
type serialTxManager struct {
	mu sync.Mutex
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeVenue(id int64) *domain.Venue {
	return &domain.Venue{ID: id, Name: fmt.Sprintf("venue-%d", id), Active: true}
}

func rosterEntry(id int64) *domain.DJ {
	return &domain.DJ{ID: id, DisplayName: fmt.Sprintf("dj-%d", id), Role: domain.RoleDJ}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	bookings.On("GetDJIDsForVenueDate", mock.Anything, int64(10), date).Return([]int64{2}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.DJID == 1 && b.VenueID == 10 && b.Date.Equal(date) && b.Confirmed
	})).Return(&domain.Booking{
		ID: 42, DJID: 1, VenueID: 10, Date: date, Confirmed: true,
		RecordedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 10, Date: date})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-12", resp.Date)
	assert.True(t, resp.Confirmed)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_NormalizesDateToUTCMidnight(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	// Дата с временем и смещением должна схлопнуться в полночь UTC того же календарного дня
	loc := time.FixedZone("MSK", 3*60*60)
	input := time.Date(2026, 9, 12, 18, 45, 11, 0, loc)
	normalized := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	bookings.On("GetDJIDsForVenueDate", mock.Anything, int64(10), normalized).Return([]int64{}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Date.Equal(normalized)
	})).Return(&domain.Booking{ID: 1, DJID: 1, VenueID: 10, Date: normalized, Confirmed: true}, nil)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	resp, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 10, Date: input})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-12", resp.Date)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_Duplicate(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	bookings.On("GetDJIDsForVenueDate", mock.Anything, int64(10), date).Return([]int64{1, 2}, nil)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 10, Date: date})

	assert.ErrorIs(t, err, createBooking.ErrDuplicateBooking)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_VenueFull(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	djs.On("GetByID", mock.Anything, int64(4)).Return(rosterEntry(4), nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	bookings.On("GetDJIDsForVenueDate", mock.Anything, int64(10), date).Return([]int64{1, 2, 3}, nil)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 4, VenueID: 10, Date: date})

	assert.ErrorIs(t, err, createBooking.ErrVenueFull)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_VenueInactive(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, Name: "closed", Active: false}, nil)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &createBooking.Request{
		DJID: 1, VenueID: 10, Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, createBooking.ErrVenueInactive)
}

func TestCreateBooking_VenueNotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)
	venues.On("GetByID", mock.Anything, int64(99)).Return(nil, venueRepo.ErrVenueNotFound)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &createBooking.Request{
		DJID: 1, VenueID: 99, Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, createBooking.ErrVenueNotFound)
}

func TestCreateBooking_DJNotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	djs.On("GetByID", mock.Anything, int64(77)).Return(nil, djRepo.ErrDJNotFound)

	uc := createBooking.NewUseCase(bookings, venues, djs, &serialTxManager{}, 3, nopLogger{})

	_, err := uc.Execute(context.Background(), &createBooking.Request{
		DJID: 77, VenueID: 10, Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, createBooking.ErrDJNotFound)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	uc := createBooking.NewUseCase(
		new(MockBookingRepository), new(MockVenueRepository), new(MockDJRepository),
		&serialTxManager{}, 3, nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &createBooking.Request{
		DJID: 0, VenueID: 10, Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, createBooking.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 10})
	assert.ErrorIs(t, err, createBooking.ErrInvalidDate)
}

// fakeLedger потокобезопасный журнал в памяти для проверки конкурентных
// заявок и цикла создание-удаление
type fakeLedger struct {
	mu      sync.Mutex
	nextID  int64
	byDay   map[string][]int64
	records map[int64]domain.Booking
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		byDay:   make(map[string][]int64),
		records: make(map[int64]domain.Booking),
	}
}

func ledgerKey(venueID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", venueID, date.Format(domain.DateFormat))
}

func (f *fakeLedger) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := ledgerKey(b.VenueID, b.Date)
	for _, id := range f.byDay[key] {
		if id == b.DJID {
			return nil, bookingRepo.ErrDuplicateBooking
		}
	}

	f.byDay[key] = append(f.byDay[key], b.DJID)
	f.nextID++

	created := *b
	created.ID = f.nextID
	created.RecordedAt = time.Now().UTC()
	f.records[created.ID] = created
	return &created, nil
}

func (f *fakeLedger) DeleteOwned(ctx context.Context, bookingID, djID int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[bookingID]
	if !ok || rec.DJID != djID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	delete(f.records, bookingID)

	key := ledgerKey(rec.VenueID, rec.Date)
	for i, id := range f.byDay[key] {
		if id == rec.DJID {
			f.byDay[key] = append(f.byDay[key][:i], f.byDay[key][i+1:]...)
			break
		}
	}
	return &rec, nil
}

func (f *fakeLedger) GetDJIDsForVenueDate(ctx context.Context, venueID int64, date time.Time) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := f.byDay[ledgerKey(venueID, date)]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out, nil
}

// Диджей может работать в двух салонах в один день:
// дубликатом считается только повтор той же тройки (диджей, салон, дата)
func TestCreateBooking_SameDJTwoVenuesSameDate(t *testing.T) {
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	venues.On("GetByID", mock.Anything, int64(11)).Return(activeVenue(11), nil)
	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)

	ledger := newFakeLedger()
	uc := createBooking.NewUseCase(ledger, venues, djs, &serialTxManager{}, 3, nopLogger{})

	first, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 10, Date: date})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &createBooking.Request{DJID: 1, VenueID: 11, Date: date})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	ids, err := ledger.GetDJIDsForVenueDate(context.Background(), 11, date)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

// Удаление освобождает слот: ту же тройку (диджей, салон, дата)
// можно забронировать заново
func TestCreateBooking_RecreateAfterDelete(t *testing.T) {
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	djs.On("GetByID", mock.Anything, int64(1)).Return(rosterEntry(1), nil)

	ledger := newFakeLedger()
	uc := createBooking.NewUseCase(ledger, venues, djs, &serialTxManager{}, 3, nopLogger{})

	req := &createBooking.Request{DJID: 1, VenueID: 10, Date: date}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, createBooking.ErrDuplicateBooking)

	deleted, err := ledger.DeleteOwned(context.Background(), first.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, deleted.ID)

	recreated, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, recreated.ID)
	assert.Equal(t, "2026-09-12", recreated.Date)
}

// При пяти конкурентных заявках на один салон и дату проходят ровно три
func TestCreateBooking_ConcurrentRequests(t *testing.T) {
	venues := new(MockVenueRepository)
	djs := new(MockDJRepository)

	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	venues.On("GetByID", mock.Anything, int64(10)).Return(activeVenue(10), nil)
	for i := int64(1); i <= 5; i++ {
		djs.On("GetByID", mock.Anything, i).Return(rosterEntry(i), nil)
	}

	ledger := newFakeLedger()
	uc := createBooking.NewUseCase(ledger, venues, djs, &serialTxManager{}, 3, nopLogger{})

	var wg sync.WaitGroup
	results := make([]error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &createBooking.Request{
				DJID:    int64(i + 1),
				VenueID: 10,
				Date:    date,
			})
			results[i] = err
		}(i)
	}

	wg.Wait()

	created, rejected := 0, 0
	for _, err := range results {
		if err == nil {
			created++
			continue
		}
		require.ErrorIs(t, err, createBooking.ErrVenueFull)
		rejected++
	}

	assert.Equal(t, 3, created)
	assert.Equal(t, 2, rejected)

	ids, err := ledger.GetDJIDsForVenueDate(context.Background(), 10, date)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

