package reschedule_appointment

import (
	"context"

	rescheduleAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
)

type RescheduleAppointmentUseCase interface {
	Execute(ctx context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
