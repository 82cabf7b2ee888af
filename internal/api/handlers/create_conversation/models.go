package create_conversation

// CreateConversationResponse HTTP response model
type CreateConversationResponse struct {
	ConversationID string `json:"conversationId"`
}
