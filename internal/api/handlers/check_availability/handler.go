package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	queryAvailability "github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
)

const (
	msgMissingStart = "не указано время, ожидается параметр start=YYYY-MM-DDTHH:MM:SS"
	msgInvalidStart = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM:SS"
)

type Handler struct {
	useCase QueryAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase QueryAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=YYYY-MM-DDTHH:MM:SS
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawStart := r.URL.Query().Get("start")
	if rawStart == "" {
		h.logger.Warn("GET /availability - Missing start parameter")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	start, err := time.Parse(domain.TimestampFormat, rawStart)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid start %q: %v", rawStart, err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &queryAvailability.Request{Start: start})
	if err != nil {
		switch {
		case errors.Is(err, queryAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
