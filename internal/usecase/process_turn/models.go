package process_turn

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// Request один ход пользователя в беседе
type Request struct {
	ConversationID string
	Intent         string
	Entities       []domain.Entity
}

// ToolResult результат выполнения инструмента движка записи
type ToolResult struct {
	Success       bool
	Reason        domain.ReasonCode
	AppointmentID *int64
	Found         *bool
	Summary       string
	StartTime     *time.Time
	EndTime       *time.Time
	Suggestions   []time.Time
}

// Response результат обработки хода: действие для NLG и, если на этом ходе
// выполнялся инструмент, его результат
type Response struct {
	Action *domain.Action
	Result *ToolResult
}
