package create_venue

import (
	"errors"
	"net/http"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/venues"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDJID        = "отсутствует ID диджея"
	msgForbidden          = "доступ запрещен"
	msgDuplicateName      = "салон с таким названием уже существует"
	msgInvalidParams      = "некорректные параметры запроса"
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

// Handle POST /api/v1/venues
// Создавать салоны могут только администраторы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	djID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	var req CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(djID))
	if err != nil {
		switch {
		case errors.Is(err, venues.ErrAccessDenied):
			h.logger.Warn("POST /venues - Access denied: dj_id=%d", djID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, venues.ErrDuplicateName):
			h.logger.Warn("POST /venues - Duplicate name: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, venues.ErrInvalidInput):
			h.logger.Warn("POST /venues - Invalid input: dj_id=%d, error=%v", djID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /venues - Failed to create venue: dj_id=%d, error=%v", djID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues - Venue created successfully: venue_id=%d, name=%q, dj_id=%d",
		result.ID, result.Name, djID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
