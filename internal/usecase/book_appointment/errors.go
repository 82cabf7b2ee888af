package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("book_appointment: internal error")
)
