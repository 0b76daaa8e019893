package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings"
	"github.com/m04kA/DJB-ScheduleService/pkg/metrics"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingDJID      = "отсутствует ID диджея"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(service BookingService, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Удалять можно только собственные бронирования;
// чужое бронирование неотличимо от несуществующего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	djID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	deleted, err := h.service.Delete(r.Context(), bookingID, djID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d, dj_id=%d",
				bookingID, djID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%d, dj_id=%d, venue_id=%d, date=%s",
		deleted.ID, djID, deleted.VenueID, deleted.Date)
	h.metrics.IncBookingDeleted(deleted.VenueID)
	handlers.RespondJSON(w, http.StatusOK, deleted)
}
