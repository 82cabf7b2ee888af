package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewStartTime string `json:"newStartTime"` // "2025-10-15T10:00:00"
}

// RescheduleAppointmentResponse HTTP response model
type RescheduleAppointmentResponse struct {
	Success     bool     `json:"success"`
	Reason      string   `json:"reason,omitempty"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	start, err := time.Parse(domain.TimestampFormat, r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		NewStart:      start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleAppointmentResponse {
	out := &RescheduleAppointmentResponse{
		Success: resp.Success,
	}

	if resp.Success {
		out.StartTime = resp.StartTime.Format(domain.TimestampFormat)
		out.EndTime = resp.EndTime.Format(domain.TimestampFormat)
		return out
	}

	out.Reason = string(resp.Reason)
	for _, s := range resp.Suggestions {
		out.Suggestions = append(out.Suggestions, s.Format(domain.TimestampFormat))
	}

	return out
}
