package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	"github.com/m04kA/SMC-ScheduleBot/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	appointments []*domain.Appointment
	countErr     error
	listErr      error
}

func (f *fakeRepo) CountByDate(_ context.Context, date time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, a := range f.appointments {
		if a.IsSameDay(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) ListOverlapping(_ context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.Overlaps(start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func testRules() *domain.ScheduleRules {
	return &domain.ScheduleRules{
		SlotDurationMinutes:   30,
		MinGapMinutes:         15,
		MaxAppointmentsPerDay: 4,
		WorkingHours:          domain.TimeRange{Start: types.TimeString("09:00"), End: types.TimeString("18:00")},
		LunchBreak:            domain.TimeRange{Start: types.TimeString("13:00"), End: types.TimeString("14:00")},
		NonWorkingDays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
	}
}

// 2025-03-03 понедельник
func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
}

// 2025-03-01 суббота
func saturdayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 1, hour, minute, 0, 0, time.UTC)
}

func appointmentAt(start time.Time, minutes int) *domain.Appointment {
	return &domain.Appointment{
		Summary:   "checkup with Dr. Lee",
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestCheckAvailability_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		existing []*domain.Appointment
		want     domain.ReasonCode
	}{
		{
			name:  "empty working day slot is available",
			start: mondayAt(10, 0),
			want:  domain.ReasonAvailable,
		},
		{
			name:  "saturday is a non-working day",
			start: saturdayAt(10, 0),
			want:  domain.ReasonNonWorkingDay,
		},
		{
			name:  "non-working day wins over daily limit",
			start: saturdayAt(10, 0),
			existing: []*domain.Appointment{
				appointmentAt(saturdayAt(9, 0), 30),
				appointmentAt(saturdayAt(10, 0), 30),
				appointmentAt(saturdayAt(11, 0), 30),
				appointmentAt(saturdayAt(12, 0), 30),
			},
			want: domain.ReasonNonWorkingDay,
		},
		{
			name:  "daily limit reached",
			start: mondayAt(16, 0),
			existing: []*domain.Appointment{
				appointmentAt(mondayAt(9, 0), 30),
				appointmentAt(mondayAt(10, 0), 30),
				appointmentAt(mondayAt(11, 0), 30),
				appointmentAt(mondayAt(12, 0), 30),
			},
			want: domain.ReasonDailyLimitReached,
		},
		{
			name:  "before opening",
			start: mondayAt(8, 30),
			want:  domain.ReasonOutsideWorkingHours,
		},
		{
			name:  "slot end crosses closing time",
			start: mondayAt(17, 45),
			want:  domain.ReasonOutsideWorkingHours,
		},
		{
			name:  "last slot of the day fits exactly",
			start: mondayAt(17, 30),
			want:  domain.ReasonAvailable,
		},
		{
			name:  "opening time is available",
			start: mondayAt(9, 0),
			want:  domain.ReasonAvailable,
		},
		{
			name:  "slot crossing midnight is outside working hours",
			start: mondayAt(23, 50),
			want:  domain.ReasonOutsideWorkingHours,
		},
		{
			name:  "slot inside lunch break",
			start: mondayAt(13, 0),
			want:  domain.ReasonDuringLunchBreak,
		},
		{
			name:  "slot end leaks into lunch break",
			start: mondayAt(12, 45),
			want:  domain.ReasonDuringLunchBreak,
		},
		{
			name:  "slot ending exactly at lunch start is fine",
			start: mondayAt(12, 30),
			want:  domain.ReasonAvailable,
		},
		{
			name:  "slot starting exactly at lunch end is fine",
			start: mondayAt(14, 0),
			want:  domain.ReasonAvailable,
		},
		{
			name:  "exact double booking",
			start: mondayAt(10, 0),
			existing: []*domain.Appointment{
				appointmentAt(mondayAt(10, 0), 30),
			},
			want: domain.ReasonSlotBooked,
		},
		{
			name:  "partial overlap",
			start: mondayAt(10, 15),
			existing: []*domain.Appointment{
				appointmentAt(mondayAt(10, 0), 30),
			},
			want: domain.ReasonSlotBooked,
		},
		{
			name:  "gap too small after existing appointment",
			start: mondayAt(10, 40),
			existing: []*domain.Appointment{
				appointmentAt(mondayAt(10, 0), 30),
			},
			want: domain.ReasonMinGapViolation,
		},
		{
			name:  "exact minimum gap is allowed",
			start: mondayAt(10, 45),
			existing: []*domain.Appointment{
				appointmentAt(mondayAt(10, 0), 30),
			},
			want: domain.ReasonAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeRepo{appointments: tt.existing}, testRules(), nopLogger{})

			reason, err := svc.CheckAvailability(context.Background(), tt.start)

			require.NoError(t, err)
			assert.Equal(t, tt.want, reason)
		})
	}
}

func TestCheckAvailability_StoreError(t *testing.T) {
	svc := NewService(&fakeRepo{countErr: errors.New("connection refused")}, testRules(), nopLogger{})

	reason, err := svc.CheckAvailability(context.Background(), mondayAt(10, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
	assert.Equal(t, domain.ReasonStoreError, reason)
}

func TestFindAvailableSlots_EmptyDay(t *testing.T) {
	svc := NewService(&fakeRepo{}, testRules(), nopLogger{})

	slots, err := svc.FindAvailableSlots(context.Background(), mondayAt(0, 0))

	require.NoError(t, err)
	require.Len(t, slots, domain.MaxSlotSuggestions)
	assert.Equal(t, mondayAt(9, 0), slots[0])
	assert.Equal(t, mondayAt(9, 30), slots[1])
	assert.Equal(t, mondayAt(10, 0), slots[2])
}

func TestFindAvailableSlots_SkipsBookedAndGap(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		appointmentAt(mondayAt(9, 0), 30),
	}}
	svc := NewService(repo, testRules(), nopLogger{})

	slots, err := svc.FindAvailableSlots(context.Background(), mondayAt(0, 0))

	require.NoError(t, err)
	// 09:00 занят, 09:30 нарушает минимальный интервал, первые свободные с 10:00
	require.Len(t, slots, domain.MaxSlotSuggestions)
	assert.Equal(t, mondayAt(10, 0), slots[0])
	assert.Equal(t, mondayAt(10, 30), slots[1])
	assert.Equal(t, mondayAt(11, 0), slots[2])
}

func TestFindAvailableSlots_NonWorkingDay(t *testing.T) {
	svc := NewService(&fakeRepo{}, testRules(), nopLogger{})

	slots, err := svc.FindAvailableSlots(context.Background(), saturdayAt(0, 0))

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestListDaySlots_EmptyDay(t *testing.T) {
	svc := NewService(&fakeRepo{}, testRules(), nopLogger{})

	slots, err := svc.ListDaySlots(context.Background(), mondayAt(0, 0))

	require.NoError(t, err)
	// 18 получасовых кандидатов с 09:00 по 17:30, минус два в обед (13:00 и 13:30)
	assert.Len(t, slots, 16)
	assert.NotContains(t, slots, mondayAt(13, 0))
	assert.NotContains(t, slots, mondayAt(13, 30))
	assert.Contains(t, slots, mondayAt(12, 30))
	assert.Contains(t, slots, mondayAt(14, 0))
	assert.Contains(t, slots, mondayAt(17, 30))
}
