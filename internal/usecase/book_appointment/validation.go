package book_appointment

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PractitionerName) == "" {
		return fmt.Errorf("%w: practitionerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AppointmentType) == "" {
		return fmt.Errorf("%w: appointmentType is required", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	// Правила расписания работают с минутной точностью
	if req.Start.Second() != 0 || req.Start.Nanosecond() != 0 {
		return fmt.Errorf("%w: start must be aligned to a whole minute", ErrInvalidInput)
	}

	return nil
}
