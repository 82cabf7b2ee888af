package query_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("query_availability: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("query_availability: internal error")
)
