package process_turn

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/cancel_appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
	"github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-ScheduleBot/pkg/ptr"
)

// ToolHandler выполняет одно действие execute_* по деталям, собранным диалогом
type ToolHandler func(ctx context.Context, details map[string]string) (*ToolResult, error)

// executeBooking создает запись на приём по собранным деталям
func (uc *UseCase) executeBooking(ctx context.Context, details map[string]string) (*ToolResult, error) {
	start, err := parseTimestamp(details[domain.SlotTime])
	if err != nil {
		return nil, err
	}

	practitioner := strings.TrimSpace(details[domain.SlotPractitionerName])
	appointmentType := strings.TrimSpace(details[domain.SlotAppointmentType])
	if practitioner == "" || appointmentType == "" {
		return nil, fmt.Errorf("%w: practitioner and appointment type are required", errMalformedDetails)
	}

	resp, err := uc.bookUC.Execute(ctx, &book_appointment.Request{
		PractitionerName: practitioner,
		AppointmentType:  appointmentType,
		Start:            start,
	})
	if err != nil {
		return nil, err
	}

	result := &ToolResult{
		Success:     resp.Success,
		Reason:      resp.Reason,
		Summary:     resp.Summary,
		StartTime:   ptr.Ptr(resp.StartTime),
		EndTime:     ptr.Ptr(resp.EndTime),
		Suggestions: resp.Suggestions,
	}
	if resp.Success {
		result.AppointmentID = ptr.Ptr(resp.AppointmentID)
	}

	return result, nil
}

// executeCancellation отменяет запись по собранным деталям
func (uc *UseCase) executeCancellation(ctx context.Context, details map[string]string) (*ToolResult, error) {
	id, err := parseAppointmentID(details[domain.SlotAppointmentID])
	if err != nil {
		return nil, err
	}

	resp, err := uc.cancelUC.Execute(ctx, &cancel_appointment.Request{AppointmentID: id})
	if err != nil {
		return nil, err
	}

	// Отмена идемпотентна: отсутствие записи не делает ход неуспешным
	return &ToolResult{
		Success:       true,
		AppointmentID: ptr.Ptr(id),
		Found:         ptr.Ptr(resp.Found),
	}, nil
}

// executeReschedule переносит запись на новое время по собранным деталям
func (uc *UseCase) executeReschedule(ctx context.Context, details map[string]string) (*ToolResult, error) {
	id, err := parseAppointmentID(details[domain.SlotAppointmentID])
	if err != nil {
		return nil, err
	}

	start, err := parseTimestamp(details[domain.SlotTime])
	if err != nil {
		return nil, err
	}

	resp, err := uc.rescheduleUC.Execute(ctx, &reschedule_appointment.Request{
		AppointmentID: id,
		NewStart:      start,
	})
	if err != nil {
		return nil, err
	}

	return &ToolResult{
		Success:       resp.Success,
		Reason:        resp.Reason,
		AppointmentID: ptr.Ptr(id),
		Found:         ptr.Ptr(resp.Found),
		StartTime:     ptr.Ptr(resp.StartTime),
		EndTime:       ptr.Ptr(resp.EndTime),
		Suggestions:   resp.Suggestions,
	}, nil
}

// executeQueryAvail проверяет доступность времени по собранным деталям
func (uc *UseCase) executeQueryAvail(ctx context.Context, details map[string]string) (*ToolResult, error) {
	start, err := parseTimestamp(details[domain.SlotTime])
	if err != nil {
		return nil, err
	}

	resp, err := uc.queryUC.Execute(ctx, &query_availability.Request{Start: start})
	if err != nil {
		return nil, err
	}

	return &ToolResult{
		Success:     resp.Available,
		Reason:      resp.Reason,
		StartTime:   ptr.Ptr(resp.StartTime),
		Suggestions: resp.Suggestions,
	}, nil
}

// parseTimestamp разбирает время из деталей диалога
// Принимает локальный формат без зоны и RFC3339
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: time is required", errMalformedDetails)
	}

	t, err := time.Parse(domain.TimestampFormat, value)
	if err != nil {
		t, err = time.Parse(time.RFC3339, value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unparseable time %q", errMalformedDetails, value)
	}

	// Правила расписания работают с минутной точностью
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return time.Time{}, fmt.Errorf("%w: time %q is not aligned to a whole minute", errMalformedDetails, value)
	}

	return t, nil
}

// parseAppointmentID разбирает идентификатор записи из деталей диалога
// Пользователи часто пишут ID с решёткой ("#17"), она отбрасывается
func parseAppointmentID(value string) (int64, error) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if value == "" {
		return 0, fmt.Errorf("%w: appointment id is required", errMalformedDetails)
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: unparseable appointment id %q", errMalformedDetails, value)
	}

	return id, nil
}
