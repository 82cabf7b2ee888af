package cancel_appointment

import (
	"context"

	cancelAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/cancel_appointment"
)

type CancelAppointmentUseCase interface {
	Execute(ctx context.Context, req *cancelAppointment.Request) (*cancelAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
