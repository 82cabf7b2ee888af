package cancel_appointment

import "context"

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
