package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// AppointmentResponse запись на приём в ответе API
type AppointmentResponse struct {
	ID               int64  `json:"id"`
	Summary          string `json:"summary"`
	PractitionerName string `json:"practitioner_name"`
	AppointmentType  string `json:"appointment_type"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// AppointmentListResponse список записей на дату
type AppointmentListResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует доменную модель в модель ответа
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:               appt.ID,
		Summary:          appt.Summary,
		PractitionerName: appt.PractitionerName,
		AppointmentType:  appt.AppointmentType,
		StartTime:        appt.StartTime.Format(domain.TimestampFormat),
		EndTime:          appt.EndTime.Format(domain.TimestampFormat),
	}

	if !appt.CreatedAt.IsZero() {
		resp.CreatedAt = appt.CreatedAt.Format(domain.TimestampFormat)
	}
	if !appt.UpdatedAt.IsZero() {
		resp.UpdatedAt = appt.UpdatedAt.Format(domain.TimestampFormat)
	}

	return resp
}

// FromDomainAppointmentList конвертирует список доменных моделей в модель ответа
func FromDomainAppointmentList(date time.Time, appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}

	for _, appt := range appts {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(appt))
	}

	return resp
}
