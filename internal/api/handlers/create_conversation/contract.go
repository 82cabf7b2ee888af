package create_conversation

// DialogueService интерфейс диалогового сервиса
type DialogueService interface {
	NewConversation() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
