package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	venueRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/DJB-ScheduleService/internal/service/venues/models"
)

// Service справочник салонов
// Чтение доступно всем, мутации - только администраторам;
// салоны никогда не удаляются физически, только деактивируются
type Service struct {
	venueRepo VenueRepository
	djRepo    DJRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочника салонов
func NewService(venueRepo VenueRepository, djRepo DJRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		djRepo:    djRepo,
		logger:    logger,
	}
}

// List получает список салонов
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.VenueListResponse, error) {
	venues, err := s.venueRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVenueList(venues), nil
}

// Create создает новый салон (только администратор)
func (s *Service) Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error) {
	s.logger.Info("Create: creating venue %q by dj=%d", req.Name, req.RequestingDJID)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: empty venue name from dj=%d", req.RequestingDJID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxVenueNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	// Координаты задаются парой либо не задаются вовсе
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidInput)
	}

	if err := s.checkAdminAccess(ctx, req.RequestingDJID); err != nil {
		return nil, err
	}

	venue := &domain.Venue{
		Name:      name,
		Active:    true,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	created, err := s.venueRepo.Create(ctx, venue)
	if err != nil {
		if errors.Is(err, venueRepo.ErrDuplicateName) {
			s.logger.Warn("Create: venue name %q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created venue id=%d name=%q", created.ID, created.Name)
	return models.FromDomainVenue(created), nil
}

// Deactivate выключает салон (только администратор)
func (s *Service) Deactivate(ctx context.Context, venueID, requestingDJID int64) error {
	s.logger.Info("Deactivate: deactivating venue=%d by dj=%d", venueID, requestingDJID)

	if venueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if err := s.checkAdminAccess(ctx, requestingDJID); err != nil {
		return err
	}

	if err := s.venueRepo.Deactivate(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Deactivate: venue=%d not found", venueID)
			return ErrVenueNotFound
		}
		s.logger.Error("Deactivate: repository error for venue=%d: %v", venueID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated venue=%d", venueID)
	return nil
}

// checkAdminAccess проверяет, что запрашивающий имеет роль администратора
func (s *Service) checkAdminAccess(ctx context.Context, requestingDJID int64) error {
	requester, err := s.djRepo.GetByID(ctx, requestingDJID)
	if err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			s.logger.Warn("checkAdminAccess: dj=%d not found", requestingDJID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: roster error for dj=%d: %v", requestingDJID, err)
		return fmt.Errorf("%w: checkAdminAccess - roster error: %v", ErrInternal, err)
	}

	if !requester.IsAdmin() {
		s.logger.Warn("checkAdminAccess: dj=%d is not an admin", requestingDJID)
		return ErrAccessDenied
	}

	return nil
}
