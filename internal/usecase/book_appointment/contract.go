package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// AvailabilityService интерфейс движка проверки доступности
type AvailabilityService interface {
	CheckAvailability(ctx context.Context, start time.Time) (domain.ReasonCode, error)
	FindAvailableSlots(ctx context.Context, date time.Time) ([]time.Time, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
