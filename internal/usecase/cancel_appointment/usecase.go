package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	storage "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
)

// UseCase use case для отмены записи на приём
type UseCase struct {
	repo   AppointmentRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute выполняет use case отмены записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: id=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		uc.logger.Warn("CancelAppointment: invalid appointment id=%d", req.AppointmentID)
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	// 2. Удаляем запись; отсутствие записи не считается ошибкой
	err := uc.repo.Delete(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: appointment id=%d not found", req.AppointmentID)
			return &Response{Found: false}, nil
		}
		uc.logger.Error("CancelAppointment: failed to delete appointment id=%d: %v", req.AppointmentID, err)

		return nil, fmt.Errorf("%w: delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: successfully cancelled appointment id=%d", req.AppointmentID)

	return &Response{Found: true}, nil
}
