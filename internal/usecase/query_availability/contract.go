package query_availability

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
