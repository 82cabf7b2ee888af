package process_turn

import (
	"context"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
)

// DialogueService интерфейс машины состояний диалога
type DialogueService interface {
	NextAction(conversationID string, turn *domain.Turn) *domain.Action
}

// BookAppointmentUseCase интерфейс use case бронирования
type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *book_appointment.Request) (*book_appointment.Response, error)
}

// CancelAppointmentUseCase интерфейс use case отмены
type CancelAppointmentUseCase interface {
	Execute(ctx context.Context, req *cancel_appointment.Request) (*cancel_appointment.Response, error)
}

// RescheduleAppointmentUseCase интерфейс use case переноса
type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *reschedule_appointment.Request) (*reschedule_appointment.Response, error)
}

// QueryAvailabilityUseCase интерфейс use case проверки доступности
type QueryAvailabilityUseCase interface {
	Execute(ctx context.Context, req *query_availability.Request) (*query_availability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
