package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	"github.com/m04kA/DJB-ScheduleService/internal/service/roster"
	"github.com/m04kA/DJB-ScheduleService/internal/service/roster/models"
	"github.com/m04kA/DJB-ScheduleService/pkg/ptr"
)

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

func (m *MockDJRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.DJ, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DJ), args.Error(1)
}

func (m *MockDJRepository) UpdateRosterFields(ctx context.Context, id int64, role domain.Role, homeVenueID *int64, colorTag *string) error {
	args := m.Called(ctx, id, role, homeVenueID, colorTag)
	return args.Error(0)
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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var admin = &domain.DJ{ID: 100, DisplayName: "Админ", Role: domain.RoleAdmin}

func TestUpdate_Success(t *testing.T) {
	djs := new(MockDJRepository)
	venues := new(MockVenueRepository)

	entry := &domain.DJ{ID: 1, DisplayName: "Алиса", Role: domain.RoleDJ}
	updated := &domain.DJ{ID: 1, DisplayName: "Алиса", Role: domain.RoleDJ, HomeVenueID: ptr.Ptr(int64(10))}

	djs.On("GetByID", mock.Anything, int64(100)).Return(admin, nil)
	djs.On("GetByID", mock.Anything, int64(1)).Return(entry, nil).Once()
	venues.On("GetByID", mock.Anything, int64(10)).Return(&domain.Venue{ID: 10, Active: true}, nil)
	djs.On("UpdateRosterFields", mock.Anything, int64(1), domain.RoleDJ, ptr.Ptr(int64(10)), (*string)(nil)).Return(nil)
	djs.On("GetByID", mock.Anything, int64(1)).Return(updated, nil)

	svc := roster.NewService(djs, venues, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateRosterEntryRequest{
		RequestingDJID: 100,
		DJID:           1,
		Role:           "dj",
		HomeVenueID:    ptr.Ptr(int64(10)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), *resp.HomeVenueID)
	djs.AssertExpectations(t)
}

// Администратор никогда не несет домашний салон
func TestUpdate_AdminWithHomeVenueRejected(t *testing.T) {
	djs := new(MockDJRepository)
	venues := new(MockVenueRepository)

	svc := roster.NewService(djs, venues, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateRosterEntryRequest{
		RequestingDJID: 100,
		DJID:           1,
		Role:           "admin",
		HomeVenueID:    ptr.Ptr(int64(10)),
	})

	assert.ErrorIs(t, err, roster.ErrAdminHomeVenue)
	djs.AssertNotCalled(t, "UpdateRosterFields", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NonAdminRequesterDenied(t *testing.T) {
	djs := new(MockDJRepository)
	venues := new(MockVenueRepository)

	djs.On("GetByID", mock.Anything, int64(2)).Return(&domain.DJ{ID: 2, Role: domain.RoleDJ}, nil)

	svc := roster.NewService(djs, venues, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateRosterEntryRequest{
		RequestingDJID: 2,
		DJID:           1,
		Role:           "dj",
	})

	assert.ErrorIs(t, err, roster.ErrAccessDenied)
}

func TestUpdate_InvalidRole(t *testing.T) {
	svc := roster.NewService(new(MockDJRepository), new(MockVenueRepository), nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateRosterEntryRequest{
		RequestingDJID: 100,
		DJID:           1,
		Role:           "superstar",
	})

	assert.ErrorIs(t, err, roster.ErrInvalidInput)
}

func TestUpdate_TargetNotFound(t *testing.T) {
	djs := new(MockDJRepository)
	venues := new(MockVenueRepository)

	djs.On("GetByID", mock.Anything, int64(100)).Return(admin, nil)
	djs.On("GetByID", mock.Anything, int64(77)).Return(nil, djRepo.ErrDJNotFound)

	svc := roster.NewService(djs, venues, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateRosterEntryRequest{
		RequestingDJID: 100,
		DJID:           77,
		Role:           "dj",
	})

	assert.ErrorIs(t, err, roster.ErrDJNotFound)
}
