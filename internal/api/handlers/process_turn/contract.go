package process_turn

import (
	"context"

	processTurn "github.com/m04kA/SMC-ScheduleBot/internal/usecase/process_turn"
)

type ProcessTurnUseCase interface {
	Execute(ctx context.Context, req *processTurn.Request) (*processTurn.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
