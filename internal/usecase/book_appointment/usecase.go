package book_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// UseCase use case для создания записи на приём
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

// Execute выполняет use case создания записи
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции:
// между проверкой и вставкой не может вклиниться конкурентное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: practitioner=%s, type=%s, start=%s",
		req.PractitionerName, req.AppointmentType, req.Start.Format(domain.TimestampFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	end := req.Start.Add(uc.rules.SlotDuration())

	resp := &Response{
		StartTime: req.Start,
		EndTime:   end,
	}

	// 2. Проверяем доступность и создаём запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Полная проверка бизнес-правил расписания
		reason, err := uc.availability.CheckAvailability(txCtx, req.Start)
		if err != nil {
			uc.logger.Error("BookAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}

		if reason != domain.ReasonAvailable {
			resp.Reason = reason
			return nil
		}

		// 2.2. Слот свободен, создаём запись
		appt := &domain.Appointment{
			Summary:          fmt.Sprintf("%s with %s", req.AppointmentType, req.PractitionerName),
			PractitionerName: req.PractitionerName,
			AppointmentType:  req.AppointmentType,
			StartTime:        req.Start,
			EndTime:          end,
		}

		created, err := uc.repo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: create appointment: %v", ErrInternal, err)
		}

		resp.Success = true
		resp.Reason = domain.ReasonAvailable
		resp.AppointmentID = created.ID
		resp.Summary = created.Summary

		return nil
	})

	if err != nil {
		return nil, err
	}

	if !resp.Success {
		uc.logger.Warn("BookAppointment: slot %s rejected: %s",
			req.Start.Format(domain.TimestampFormat), resp.Reason)

		// 3. Отказ по бизнес-правилу: подбираем альтернативные слоты на тот же день.
		// Подбор выполняется вне транзакции и не влияет на результат отказа
		suggestions, err := uc.availability.FindAvailableSlots(ctx, req.Start)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to find alternative slots: %v", err)
		} else {
			resp.Suggestions = suggestions
		}

		return resp, nil
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", resp.AppointmentID)

	return resp, nil
}
