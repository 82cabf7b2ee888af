package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	storage "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
)

// UseCase use case для переноса записи на другое время
type UseCase struct {
	availability AvailabilityService
	repo         AppointmentRepository
	txManager    TransactionManager
	rules        *domain.ScheduleRules
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	repo AppointmentRepository,
	txManager TransactionManager,
	rules *domain.ScheduleRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		repo:         repo,
		txManager:    txManager,
		rules:        rules,
		logger:       logger,
	}
}

// Execute выполняет use case переноса записи
// Новое время проходит полную проверку бизнес-правил в сериализуемой транзакции.
// Интервал самой переносимой записи из проверки не исключается: перенос на
// время, пересекающееся со старым интервалом записи, будет отклонён как SLOT_BOOKED
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%d, newStart=%s",
		req.AppointmentID, req.NewStart.Format(domain.TimestampFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	end := req.NewStart.Add(uc.rules.SlotDuration())

	resp := &Response{
		StartTime: req.NewStart,
		EndTime:   end,
	}

	// 2. Проверяем доступность и переносим запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Полная проверка бизнес-правил для нового времени
		reason, err := uc.availability.CheckAvailability(txCtx, req.NewStart)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}

		if reason != domain.ReasonAvailable {
			resp.Reason = reason
			return nil
		}

		// 2.2. Новое время свободно, обновляем запись
		err = uc.repo.UpdateTime(txCtx, req.AppointmentID, req.NewStart, end)
		if err != nil {
			if errors.Is(err, storage.ErrAppointmentNotFound) {
				return nil
			}
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v",
				req.AppointmentID, err)

			return fmt.Errorf("%w: update appointment: %v", ErrInternal, err)
		}

		resp.Success = true
		resp.Found = true
		resp.Reason = domain.ReasonAvailable

		return nil
	})

	if err != nil {
		return nil, err
	}

	if resp.Success {
		uc.logger.Info("RescheduleAppointment: successfully moved appointment id=%d", req.AppointmentID)
		return resp, nil
	}

	if resp.Reason == "" || resp.Reason == domain.ReasonAvailable {
		// Время было свободно, но самой записи не оказалось
		uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
		resp.Reason = ""
		resp.Found = false

		return resp, nil
	}

	uc.logger.Warn("RescheduleAppointment: new slot %s rejected: %s",
		req.NewStart.Format(domain.TimestampFormat), resp.Reason)
	resp.Found = true

	// 3. Отказ по бизнес-правилу: подбираем альтернативные слоты на тот же день
	suggestions, err := uc.availability.FindAvailableSlots(ctx, req.NewStart)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to find alternative slots: %v", err)
	} else {
		resp.Suggestions = suggestions
	}

	return resp, nil
}
