package check_availability

import (
	"context"

	queryAvailability "github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
)

type QueryAvailabilityUseCase interface {
	Execute(ctx context.Context, req *queryAvailability.Request) (*queryAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
