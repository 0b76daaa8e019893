package get_dj_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DJB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/service/compensation"
	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

const (
	msgInvalidDJID   = "некорректный ID диджея"
	msgMissingDJID   = "отсутствует ID диджея"
	msgForbidden     = "доступ запрещен"
	msgDJNotFound    = "диджей не найден"
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidRange  = "начало периода позже его конца"
)

type Handler struct {
	service CompensationService
	logger  Logger
}

func NewHandler(service CompensationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/djs/{djId}/summary
// Query params: year и month либо startDate и endDate;
// без параметров считается текущий месяц
// Диджей видит только собственную сводку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	djIDStr := vars["djId"]

	djID, err := strconv.ParseInt(djIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /djs/{id}/summary - Invalid dj ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDJID)
		return
	}

	requesterID, ok := middleware.GetDJID(r.Context())
	if !ok {
		h.logger.Warn("GET /djs/{id}/summary - Missing dj ID")
		handlers.RespondUnauthorized(w, msgMissingDJID)
		return
	}

	if requesterID != djID {
		h.logger.Warn("GET /djs/{id}/summary - Access denied: dj_id=%d, requester_id=%d", djID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	query := r.URL.Query()
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")

	var result *SummaryResponse

	if startDateStr != "" || endDateStr != "" {
		// Явный диапазон дат
		startDate, err := types.ParseDate(startDateStr)
		if err != nil {
			h.logger.Warn("GET /djs/{id}/summary - Invalid startDate %q: %v", startDateStr, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		endDate, err := types.ParseDate(endDateStr)
		if err != nil {
			h.logger.Warn("GET /djs/{id}/summary - Invalid endDate %q: %v", endDateStr, err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}

		summary, err := h.service.GetSummaryByRange(r.Context(), djID, startDate, endDate)
		if err != nil {
			h.respondServiceError(w, djID, err)
			return
		}
		result = FromDomainSummary(summary)
	} else {
		// Календарный месяц, по умолчанию текущий
		now := time.Now().UTC()
		year := now.Year()
		month := now.Month()

		if yearStr := query.Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				h.logger.Warn("GET /djs/{id}/summary - Invalid year %q: %v", yearStr, err)
				handlers.RespondBadRequest(w, msgInvalidParams)
				return
			}
			year = parsed
		}

		if monthStr := query.Get("month"); monthStr != "" {
			parsed, err := strconv.Atoi(monthStr)
			if err != nil {
				h.logger.Warn("GET /djs/{id}/summary - Invalid month %q: %v", monthStr, err)
				handlers.RespondBadRequest(w, msgInvalidParams)
				return
			}
			month = time.Month(parsed)
		}

		summary, err := h.service.GetMonthlySummary(r.Context(), djID, year, month)
		if err != nil {
			h.respondServiceError(w, djID, err)
			return
		}
		result = FromDomainSummary(summary)
	}

	h.logger.Info("GET /djs/{id}/summary - Summary retrieved successfully: dj_id=%d, total=%d, extra_pay=%d",
		djID, result.TotalEvents, result.ExtraPay)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, djID int64, err error) {
	switch {
	case errors.Is(err, compensation.ErrDJNotFound):
		h.logger.Warn("GET /djs/{id}/summary - DJ not found: dj_id=%d", djID)
		handlers.RespondNotFound(w, msgDJNotFound)

	case errors.Is(err, compensation.ErrInvalidRange):
		h.logger.Warn("GET /djs/{id}/summary - Invalid range: dj_id=%d", djID)
		handlers.RespondBadRequest(w, msgInvalidRange)

	case errors.Is(err, compensation.ErrInvalidInput):
		h.logger.Warn("GET /djs/{id}/summary - Invalid input: dj_id=%d, error=%v", djID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)

	default:
		h.logger.Error("GET /djs/{id}/summary - Failed to get summary: dj_id=%d, error=%v", djID, err)
		handlers.RespondInternalError(w)
	}
}
