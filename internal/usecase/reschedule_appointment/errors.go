package reschedule_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
