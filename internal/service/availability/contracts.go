package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CountByDate(ctx context.Context, date time.Time) (int, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
