package reschedule_appointment

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewStart.IsZero() {
		return fmt.Errorf("%w: newStart is required", ErrInvalidInput)
	}

	// Правила расписания работают с минутной точностью
	if req.NewStart.Second() != 0 || req.NewStart.Nanosecond() != 0 {
		return fmt.Errorf("%w: newStart must be aligned to a whole minute", ErrInvalidInput)
	}

	return nil
}
