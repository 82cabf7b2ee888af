package get_available_slots

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
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.ListDaySlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /available-slots - Failed to list slots for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSlots(date, slots))
}
