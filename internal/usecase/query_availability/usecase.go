package query_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// UseCase use case для проверки доступности времени
// Операция только читает расписание и не требует транзакции: ответ в любом
// случае может устареть к моменту фактического бронирования
type UseCase struct {
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QueryAvailability: start=%s", req.Start.Format(domain.TimestampFormat))

	// 1. Валидация входных данных
	if req.Start.IsZero() {
		uc.logger.Warn("QueryAvailability: start is required")
		return nil, fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	// Правила расписания работают с минутной точностью
	if req.Start.Second() != 0 || req.Start.Nanosecond() != 0 {
		uc.logger.Warn("QueryAvailability: start is not aligned to a whole minute")
		return nil, fmt.Errorf("%w: start must be aligned to a whole minute", ErrInvalidInput)
	}

	// 2. Проверяем бизнес-правила расписания
	reason, err := uc.availability.CheckAvailability(ctx, req.Start)
	if err != nil {
		uc.logger.Error("QueryAvailability: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}

	resp := &Response{
		Available: reason == domain.ReasonAvailable,
		Reason:    reason,
		StartTime: req.Start,
	}

	// 3. Если время занято, подбираем альтернативные слоты на тот же день
	if !resp.Available {
		suggestions, err := uc.availability.FindAvailableSlots(ctx, req.Start)
		if err != nil {
			uc.logger.Error("QueryAvailability: failed to find alternative slots: %v", err)
		} else {
			resp.Suggestions = suggestions
		}
	}

	return resp, nil
}
