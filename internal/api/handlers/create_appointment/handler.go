package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM:SS"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Отказ по бизнес-правилу расписания возвращается как конфликт
	if !result.Success {
		h.logger.Warn("POST /appointments - Slot rejected: reason=%s", result.Reason)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d", result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
