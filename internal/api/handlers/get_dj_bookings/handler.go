package get_dj_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings"
)

const (
	msgInvalidDJID   = "некорректный ID диджея"
	msgMissingDJID   = "отсутствует ID диджея"
	msgForbidden     = "доступ запрещен"
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidRange  = "начало периода позже его конца"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/djs/{djId}/bookings
// Query params: year, month, startDate, endDate (опционально)
// Диджей видит только собственный график
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	djIDStr := vars["djId"]

	djID, err := strconv.ParseInt(djIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /djs/{id}/bookings - Invalid dj ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDJID)
		return
	}

	requesterID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("GET /djs/{id}/bookings - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	if requesterID != djID {
		h.logger.Warn("GET /djs/{id}/bookings - Access denied: dj_id=%d, requester_id=%d", djID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		djID,
		query.Get("year"),
		query.Get("month"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		h.logger.Warn("GET /djs/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetDJBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidRange):
			h.logger.Warn("GET /djs/{id}/bookings - Invalid range: dj_id=%d", djID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /djs/{id}/bookings - Invalid input: dj_id=%d, error=%v", djID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /djs/{id}/bookings - Failed to get bookings: dj_id=%d, error=%v", djID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /djs/{id}/bookings - Bookings retrieved successfully: dj_id=%d, count=%d",
		djID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
