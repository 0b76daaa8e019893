package update_dj

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/roster"
)

const (
	msgInvalidDJID        = "некорректный ID диджея"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDJID        = "отсутствует ID диджея"
	msgForbidden          = "доступ запрещен"
	msgDJNotFound         = "диджей не найден"
	msgVenueNotFound      = "домашний салон не найден"
	msgAdminHomeVenue     = "администратору нельзя назначить домашний салон"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/djs/{djId}
// Обновлять записи ростера могут только администраторы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	djIDStr := vars["djId"]

	djID, err := strconv.ParseInt(djIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /djs/{id} - Invalid dj ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDJID)
		return
	}

	requesterID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("PUT /djs/{id} - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	var req UpdateDJRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /djs/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(djID, requesterID))
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrAccessDenied):
			h.logger.Warn("PUT /djs/{id} - Access denied: dj_id=%d, requester_id=%d", djID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, roster.ErrDJNotFound):
			h.logger.Warn("PUT /djs/{id} - DJ not found: dj_id=%d", djID)
			handlers.RespondNotFound(w, msgDJNotFound)

		case errors.Is(err, roster.ErrVenueNotFound):
			h.logger.Warn("PUT /djs/{id} - Home venue not found: dj_id=%d", djID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, roster.ErrAdminHomeVenue):
			h.logger.Warn("PUT /djs/{id} - Admin with home venue: dj_id=%d", djID)
			handlers.RespondBadRequest(w, msgAdminHomeVenue)

		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("PUT /djs/{id} - Invalid input: dj_id=%d, error=%v", djID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PUT /djs/{id} - Failed to update roster entry: dj_id=%d, error=%v", djID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /djs/{id} - Roster entry updated successfully: dj_id=%d, role=%s, requester_id=%d",
		result.ID, result.Role, requesterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
