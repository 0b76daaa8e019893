package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	venueRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/venue"
	"github.com/m04kA/DJB-ScheduleService/internal/service/roster/models"
)

// Service административное управление ростером диджеев
type Service struct {
	djRepo    DJRepository
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса ростера
func NewService(djRepo DJRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		djRepo:    djRepo,
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// Get получает запись ростера по ID
func (s *Service) Get(ctx context.Context, djID int64) (*models.DJResponse, error) {
	entry, err := s.djRepo.GetByID(ctx, djID)
	if err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			return nil, ErrDJNotFound
		}
		s.logger.Error("Get: repository error for dj=%d: %v", djID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDJ(entry), nil
}

// Update обновляет роль, домашний салон и цветовую метку записи ростера (только администратор)
func (s *Service) Update(ctx context.Context, req *models.UpdateRosterEntryRequest) (*models.DJResponse, error) {
	s.logger.Info("Update: updating roster entry dj=%d by dj=%d", req.DJID, req.RequestingDJID)

	role := domain.Role(req.Role)
	if !role.IsValid() {
		s.logger.Warn("Update: invalid role %q for dj=%d", req.Role, req.DJID)
		return nil, fmt.Errorf("%w: role must be one of: dj, admin", ErrInvalidInput)
	}
	if req.ColorTag != nil && len(*req.ColorTag) > domain.MaxColorTagLength {
		return nil, fmt.Errorf("%w: colorTag is too long", ErrInvalidInput)
	}
	// Администраторы никогда не привязываются к домашнему салону
	if role == domain.RoleAdmin && req.HomeVenueID != nil {
		s.logger.Warn("Update: attempt to assign home venue to admin dj=%d", req.DJID)
		return nil, ErrAdminHomeVenue
	}

	if err := s.checkAdminAccess(ctx, req.RequestingDJID); err != nil {
		return nil, err
	}

	if _, err := s.djRepo.GetByID(ctx, req.DJID); err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			s.logger.Warn("Update: dj=%d not found", req.DJID)
			return nil, ErrDJNotFound
		}
		s.logger.Error("Update: repository error for dj=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.HomeVenueID != nil {
		if _, err := s.venueRepo.GetByID(ctx, *req.HomeVenueID); err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				s.logger.Warn("Update: home venue=%d not found for dj=%d", *req.HomeVenueID, req.DJID)
				return nil, ErrVenueNotFound
			}
			s.logger.Error("Update: venue repository error for venue=%d: %v", *req.HomeVenueID, err)
			return nil, fmt.Errorf("%w: Update - venue repository error: %v", ErrInternal, err)
		}
	}

	if err := s.djRepo.UpdateRosterFields(ctx, req.DJID, role, req.HomeVenueID, req.ColorTag); err != nil {
		if errors.Is(err, djRepo.ErrDJNotFound) {
			return nil, ErrDJNotFound
		}
		s.logger.Error("Update: repository error for dj=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.djRepo.GetByID(ctx, req.DJID)
	if err != nil {
		s.logger.Error("Update: failed to reload dj=%d: %v", req.DJID, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated roster entry dj=%d role=%s", req.DJID, role)
	return models.FromDomainDJ(updated), nil
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
