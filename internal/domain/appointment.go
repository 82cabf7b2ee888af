package domain

import "time"

// Appointment запись на приём в календаре
// Создается бронированием, время изменяется переносом, удаляется отменой
type Appointment struct {
	ID               int64
	Summary          string
	PractitionerName string
	AppointmentType  string
	StartTime        time.Time
	EndTime          time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration длительность приёма
func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Overlaps проверяет пересечение с интервалом [start, end)
// Используются строгие неравенства: граничащие интервалы не пересекаются
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// IsSameDay проверяет, что приём назначен на указанную дату
func (a *Appointment) IsSameDay(date time.Time) bool {
	y1, m1, d1 := a.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
