package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_appointment: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("cancel_appointment: internal error")
)
