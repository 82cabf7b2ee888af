package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgInvalidStartTime     = "некорректный формат нового времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgAppointmentNotFound  = "запись не найдена"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/reschedule - Invalid appointment id: %v", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/%d/reschedule - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PATCH /appointments/%d/reschedule - Failed to parse new start time: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/%d/reschedule - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/%d/reschedule - Failed to reschedule: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Found {
		h.logger.Warn("PATCH /appointments/%d/reschedule - Appointment not found", id)
		handlers.RespondNotFound(w, msgAppointmentNotFound)
		return
	}

	response := FromUseCaseResponse(result)

	if !result.Success {
		h.logger.Warn("PATCH /appointments/%d/reschedule - New slot rejected: reason=%s", id, result.Reason)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	h.logger.Info("PATCH /appointments/%d/reschedule - Appointment moved to %s", id, response.StartTime)
	handlers.RespondJSON(w, http.StatusOK, response)
}
