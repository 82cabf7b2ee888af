package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/pkg/types"
)

// ReasonCode структурированная причина результата проверки доступности слота
// Нарушение бизнес-правила — это не ошибка: код всегда возвращается значением
type ReasonCode string

const (
	ReasonAvailable           ReasonCode = "AVAILABLE"
	ReasonNonWorkingDay       ReasonCode = "NON_WORKING_DAY"
	ReasonDailyLimitReached   ReasonCode = "DAILY_LIMIT_REACHED"
	ReasonOutsideWorkingHours ReasonCode = "OUTSIDE_WORKING_HOURS"
	ReasonDuringLunchBreak    ReasonCode = "DURING_LUNCH_BREAK"
	ReasonSlotBooked          ReasonCode = "SLOT_BOOKED"
	ReasonMinGapViolation     ReasonCode = "MIN_GAP_VIOLATION"
	ReasonStoreError          ReasonCode = "STORE_ERROR"
)

// TimeRange интервал времени в рамках одного дня
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Intersects проверяет пересечение интервала [start, end) с r на оси времени суток
// Граничащие интервалы не пересекаются
func (r TimeRange) Intersects(start, end types.TimeString) bool {
	endsBefore := !end.IsAfter(r.Start)   // end <= r.Start
	startsAfter := !start.IsBefore(r.End) // start >= r.End
	return !endsBefore && !startsAfter
}

// ScheduleRules бизнес-правила записи на приём
// Загружаются один раз из конфигурации при старте процесса и дальше не изменяются
type ScheduleRules struct {
	SlotDurationMinutes   int
	MinGapMinutes         int
	MaxAppointmentsPerDay int
	WorkingHours          TimeRange
	LunchBreak            TimeRange
	NonWorkingDays        map[time.Weekday]bool
}

// SlotDuration длительность одного слота
func (r *ScheduleRules) SlotDuration() time.Duration {
	return time.Duration(r.SlotDurationMinutes) * time.Minute
}

// MinGap минимальный интервал между соседними приёмами
func (r *ScheduleRules) MinGap() time.Duration {
	return time.Duration(r.MinGapMinutes) * time.Minute
}

// IsNonWorkingDay проверяет, является ли день недели нерабочим
func (r *ScheduleRules) IsNonWorkingDay(day time.Weekday) bool {
	return r.NonWorkingDays[day]
}

// ParseWeekday преобразует английское название дня недели ("Saturday") в time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday name: %q", name)
}
