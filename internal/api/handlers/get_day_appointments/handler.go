package get_day_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

const (
	msgMissingDate = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /appointments - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
