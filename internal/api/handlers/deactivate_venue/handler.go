package deactivate_venue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/venues"
)

const (
	msgInvalidVenueID = "некорректный ID салона"
	msgMissingDJID    = "отсутствует ID диджея"
	msgForbidden      = "доступ запрещен"
	msgNotFound       = "салон не найден"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/venues/{venueId}/deactivate
// Салон не удаляется физически: история бронирований должна пережить закрытие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /venues/{id}/deactivate - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	djID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /venues/{id}/deactivate - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	err = h.service.Deactivate(r.Context(), venueID, djID)
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			h.logger.Warn("PATCH /venues/{id}/deactivate - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("PATCH /venues/{id}/deactivate - Access denied: venue_id=%d, dj_id=%d", venueID, djID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("PATCH /venues/{id}/deactivate - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		default:
			h.logger.Error("PATCH /venues/{id}/deactivate - Failed to deactivate venue: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /venues/{id}/deactivate - Venue deactivated successfully: venue_id=%d, dj_id=%d",
		venueID, djID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
