package create_conversation

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleBot/internal/api/handlers"
)

type Handler struct {
	dialogue DialogueService
	logger   Logger
}

func NewHandler(dialogue DialogueService, logger Logger) *Handler {
	return &Handler{
		dialogue: dialogue,
		logger:   logger,
	}
}

// Handle POST /api/v1/conversations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := h.dialogue.NewConversation()

	h.logger.Info("POST /conversations - Conversation created: conversation_id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, &CreateConversationResponse{ConversationID: id})
}
