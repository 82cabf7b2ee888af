package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleBot/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgAppointmentNotFound  = "запись не найдена"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment id: %v", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/%d - Appointment not found", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/%d - Failed to get appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
