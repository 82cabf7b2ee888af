package process_turn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// UseCase use case обработки одного хода беседы: прогоняет реплику через
// машину состояний диалога и, если она решила выполнить действие,
// вызывает соответствующий инструмент движка записи
type UseCase struct {
	dialogue     DialogueService
	bookUC       BookAppointmentUseCase
	cancelUC     CancelAppointmentUseCase
	rescheduleUC RescheduleAppointmentUseCase
	queryUC      QueryAvailabilityUseCase
	tools        map[string]ToolHandler
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	dialogue DialogueService,
	bookUC BookAppointmentUseCase,
	cancelUC CancelAppointmentUseCase,
	rescheduleUC RescheduleAppointmentUseCase,
	queryUC QueryAvailabilityUseCase,
	logger Logger,
) *UseCase {
	uc := &UseCase{
		dialogue:     dialogue,
		bookUC:       bookUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		queryUC:      queryUC,
		logger:       logger,
	}

	uc.tools = map[string]ToolHandler{
		domain.ActionExecuteBooking:      uc.executeBooking,
		domain.ActionExecuteCancellation: uc.executeCancellation,
		domain.ActionExecuteReschedule:   uc.executeReschedule,
		domain.ActionExecuteQueryAvail:   uc.executeQueryAvail,
	}

	return uc
}

// Execute выполняет use case обработки хода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessTurn: conversation=%s, intent=%s", req.ConversationID, req.Intent)

	// 1. Валидация входных данных
	if strings.TrimSpace(req.ConversationID) == "" {
		uc.logger.Warn("ProcessTurn: conversationID is required")
		return nil, fmt.Errorf("%w: conversationID is required", ErrInvalidInput)
	}

	// 2. Машина состояний решает, что делать дальше
	turn := &domain.Turn{Intent: req.Intent, Entities: req.Entities}
	action := uc.dialogue.NextAction(req.ConversationID, turn)

	// 3. Не-execute действия уходят в NLG как есть
	if !strings.HasPrefix(action.Name, domain.ExecuteActionPrefix) {
		return &Response{Action: action}, nil
	}

	handler, ok := uc.tools[action.Name]
	if !ok {
		uc.logger.Error("ProcessTurn: no tool registered for action %s", action.Name)
		return &Response{Action: fallbackAction()}, nil
	}

	// 4. Выполняем инструмент движка записи
	result, err := handler(ctx, action.Details)
	if err != nil {
		if errors.Is(err, errMalformedDetails) {
			uc.logger.Warn("ProcessTurn: %s details rejected: %v", action.Name, err)
			return &Response{Action: fallbackAction()}, nil
		}
		uc.logger.Error("ProcessTurn: tool %s failed: %v", action.Name, err)

		return nil, fmt.Errorf("%w: tool %s: %v", ErrInternal, action.Name, err)
	}

	// 5. Формируем действие-ответ для NLG
	return &Response{
		Action: &domain.Action{
			Name:    respondActionName(action.Name, result),
			Details: action.Details,
		},
		Result: result,
	}, nil
}

// respondActionName выбирает имя действия-ответа по результату инструмента
// Отказ с подобранными альтернативами превращается в suggest_slots,
// остальное в respond_<операция>
func respondActionName(toolName string, result *ToolResult) string {
	if !result.Success && len(result.Suggestions) > 0 {
		return domain.ActionSuggestSlots
	}

	return "respond_" + strings.TrimPrefix(toolName, domain.ExecuteActionPrefix)
}

func fallbackAction() *domain.Action {
	return &domain.Action{Name: domain.ActionFallback, Details: map[string]string{}}
}
