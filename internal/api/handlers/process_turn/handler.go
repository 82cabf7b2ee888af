package process_turn

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
	processTurn "github.com/m04kA/SMC-ScheduleBot/internal/usecase/process_turn"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingConvID      = "не указан идентификатор беседы"
)

type Handler struct {
	useCase ProcessTurnUseCase
	logger  Logger
}

func NewHandler(useCase ProcessTurnUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/conversations/{conversationId}/turns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]
	if conversationID == "" {
		h.logger.Warn("POST /conversations/{id}/turns - Missing conversation id")
		handlers.RespondBadRequest(w, msgMissingConvID)
		return
	}

	var req ProcessTurnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations/%s/turns - Invalid request body: %v", conversationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(conversationID))
	if err != nil {
		switch {
		case errors.Is(err, processTurn.ErrInvalidInput):
			h.logger.Warn("POST /conversations/%s/turns - Invalid input: %v", conversationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /conversations/%s/turns - Failed to process turn: %v", conversationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conversations/%s/turns - Turn processed: action=%s", conversationID, result.Action.Name)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(conversationID, result))
}
