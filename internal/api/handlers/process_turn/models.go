package process_turn

import (
	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	processTurn "github.com/m04kA/SMC-ScheduleBot/internal/usecase/process_turn"
)

// EntityModel одна сущность, извлечённая NLU из фразы пользователя
type EntityModel struct {
	Entity string `json:"entity"`
	Value  string `json:"value"`
}

// ProcessTurnRequest HTTP request model
type ProcessTurnRequest struct {
	Intent   string        `json:"intent"`
	Entities []EntityModel `json:"entities"`
}

// ActionModel действие для NLG
type ActionModel struct {
	Name         string            `json:"name"`
	Details      map[string]string `json:"details"`
	MissingSlots []string          `json:"missingSlots,omitempty"`
}

// ToolResultModel результат инструмента движка записи
type ToolResultModel struct {
	Success       bool     `json:"success"`
	Reason        string   `json:"reason,omitempty"`
	AppointmentID *int64   `json:"appointmentId,omitempty"`
	Found         *bool    `json:"found,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	StartTime     string   `json:"startTime,omitempty"`
	EndTime       string   `json:"endTime,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// ProcessTurnResponse HTTP response model
type ProcessTurnResponse struct {
	ConversationID string           `json:"conversationId"`
	Action         ActionModel      `json:"action"`
	Result         *ToolResultModel `json:"result,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProcessTurnRequest) ToUseCaseRequest(conversationID string) *processTurn.Request {
	entities := make([]domain.Entity, 0, len(r.Entities))
	for _, e := range r.Entities {
		entities = append(entities, domain.Entity{Entity: e.Entity, Value: e.Value})
	}

	return &processTurn.Request{
		ConversationID: conversationID,
		Intent:         r.Intent,
		Entities:       entities,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(conversationID string, resp *processTurn.Response) *ProcessTurnResponse {
	out := &ProcessTurnResponse{
		ConversationID: conversationID,
		Action: ActionModel{
			Name:         resp.Action.Name,
			Details:      resp.Action.Details,
			MissingSlots: resp.Action.MissingSlots,
		},
	}

	if resp.Result != nil {
		result := &ToolResultModel{
			Success:       resp.Result.Success,
			Reason:        string(resp.Result.Reason),
			AppointmentID: resp.Result.AppointmentID,
			Found:         resp.Result.Found,
			Summary:       resp.Result.Summary,
		}

		if resp.Result.StartTime != nil {
			result.StartTime = resp.Result.StartTime.Format(domain.TimestampFormat)
		}
		if resp.Result.EndTime != nil {
			result.EndTime = resp.Result.EndTime.Format(domain.TimestampFormat)
		}
		for _, s := range resp.Result.Suggestions {
			result.Suggestions = append(result.Suggestions, s.Format(domain.TimestampFormat))
		}

		out.Result = result
	}

	return out
}
