package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrInternal возвращается при внутренней ошибке сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
