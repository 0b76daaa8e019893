package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	createBooking "github.com/m04kA/DJB-ScheduleService/internal/usecase/create_booking"
	"github.com/m04kA/DJB-ScheduleService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDJID        = "отсутствует ID диджея"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDuplicateBooking   = "у вас уже есть бронирование этого салона на эту дату"
	msgVenueFull          = "на эту дату в салоне нет свободных мест"
	msgVenueNotFound      = "салон не найден"
	msgVenueInactive      = "салон деактивирован"
	msgDJNotFound         = "диджей не найден"
	msgInvalidBookingDate = "некорректная дата бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics *metrics.Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем djID из контекста (через middleware Auth)
	djID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(djID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: dj_id=%d, venue_id=%d, date=%s",
				djID, req.VenueID, req.Date)
			h.metrics.IncBookingConflict(metrics.ConflictDuplicate)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrVenueFull):
			h.logger.Warn("POST /bookings - Venue full: dj_id=%d, venue_id=%d, date=%s",
				djID, req.VenueID, req.Date)
			h.metrics.IncBookingConflict(metrics.ConflictVenueFull)
			handlers.RespondConflict(w, msgVenueFull)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrVenueInactive):
			h.logger.Warn("POST /bookings - Venue inactive: venue_id=%d", req.VenueID)
			handlers.RespondConflict(w, msgVenueInactive)

		case errors.Is(err, createBooking.ErrDJNotFound):
			h.logger.Warn("POST /bookings - DJ not found: dj_id=%d", djID)
			handlers.RespondNotFound(w, msgDJNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate), errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: dj_id=%d, venue_id=%d, error=%v",
				djID, req.VenueID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: dj_id=%d, venue_id=%d, error=%v",
				djID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, dj_id=%d, venue_id=%d, date=%s",
		result.ID, djID, result.VenueID, result.Date)
	h.metrics.IncBookingCreated(result.VenueID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
