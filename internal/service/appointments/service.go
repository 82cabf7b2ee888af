package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	storage "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/service/appointments/models"
)

// Service сервис чтения записей на приём
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: failed to get appointment %d: %v", id, err)

		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByDate получает все записи на указанную дату
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	appts, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: failed to list appointments for %s: %v",
			date.Format(domain.DateFormat), err)

		return nil, fmt.Errorf("%w: ListByDate: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(date, appts), nil
}
