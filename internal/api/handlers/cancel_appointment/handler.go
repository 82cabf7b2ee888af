package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	cancelAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/cancel_appointment"
)

const msgInvalidAppointmentID = "некорректный идентификатор записи"

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment id: %v", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{AppointmentID: id})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("DELETE /appointments/%d - Failed to cancel appointment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/%d - Appointment cancelled: found=%v", id, result.Found)
	handlers.RespondJSON(w, http.StatusOK, &CancelAppointmentResponse{Success: true, Found: result.Found})
}
