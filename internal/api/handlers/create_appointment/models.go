package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	bookAppointment "github.com/m04kA/SMC-ScheduleBot/internal/usecase/book_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PractitionerName string `json:"practitionerName"`
	AppointmentType  string `json:"appointmentType"`
	StartTime        string `json:"startTime"` // "2025-10-15T10:00:00"
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Success       bool     `json:"success"`
	Reason        string   `json:"reason,omitempty"`
	AppointmentID int64    `json:"appointmentId,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	start, err := time.Parse(domain.TimestampFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		PractitionerName: r.PractitionerName,
		AppointmentType:  r.AppointmentType,
		Start:            start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *CreateAppointmentResponse {
	out := &CreateAppointmentResponse{
		Success:   resp.Success,
		Summary:   resp.Summary,
		StartTime: resp.StartTime.Format(domain.TimestampFormat),
		EndTime:   resp.EndTime.Format(domain.TimestampFormat),
	}

	if resp.Success {
		out.AppointmentID = resp.AppointmentID
	} else {
		out.Reason = string(resp.Reason)
		for _, s := range resp.Suggestions {
			out.Suggestions = append(out.Suggestions, s.Format(domain.TimestampFormat))
		}
	}

	return out
}
