package reschedule_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	storage "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/service/availability"
	"github.com/m04kA/SMC-ScheduleBot/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo обслуживает и движок доступности, и сам use case
type fakeRepo struct {
	appointments []*domain.Appointment
	updateErr    error
	updatedID    int64
	updatedStart time.Time
}

func (f *fakeRepo) CountByDate(_ context.Context, date time.Time) (int, error) {
	count := 0
	for _, a := range f.appointments {
		if a.IsSameDay(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) ListOverlapping(_ context.Context, start, end time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if a.Overlaps(start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateTime(_ context.Context, id int64, start, _ time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStart = start
	return nil
}

func testRules() *domain.ScheduleRules {
	return &domain.ScheduleRules{
		SlotDurationMinutes:   30,
		MinGapMinutes:         15,
		MaxAppointmentsPerDay: 4,
		WorkingHours:          domain.TimeRange{Start: types.TimeString("09:00"), End: types.TimeString("18:00")},
		LunchBreak:            domain.TimeRange{Start: types.TimeString("13:00"), End: types.TimeString("14:00")},
		NonWorkingDays:        map[time.Weekday]bool{time.Saturday: true, time.Sunday: true},
	}
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	rules := testRules()
	availabilitySvc := availability.NewService(repo, rules, nopLogger{})
	return NewUseCase(availabilitySvc, repo, fakeTxManager{}, rules, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 7, StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30)},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 7,
		NewStart:      mondayAt(11, 0),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.Found)
	assert.Equal(t, mondayAt(11, 0), resp.StartTime)
	assert.Equal(t, mondayAt(11, 30), resp.EndTime)
	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, mondayAt(11, 0), repo.updatedStart)
}

func TestExecute_OwnSlotOverlapRejected(t *testing.T) {
	// Старый интервал записи не исключается из проверки: перенос на время,
	// пересекающееся с её же текущим интервалом, отклоняется как занятое
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 7, StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30)},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 7,
		NewStart:      mondayAt(10, 15),
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.True(t, resp.Found)
	assert.Equal(t, domain.ReasonSlotBooked, resp.Reason)
	assert.Zero(t, repo.updatedID)
}

func TestExecute_RejectedWithSuggestions(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{ID: 7, StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30)},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 7,
		NewStart:      mondayAt(13, 0),
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, domain.ReasonDuringLunchBreak, resp.Reason)
	require.NotEmpty(t, resp.Suggestions)
	// Слот 10:00 занят самой переносимой записью и в подсказки не попадает
	assert.NotContains(t, resp.Suggestions, mondayAt(10, 0))
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeRepo{updateErr: storage.ErrAppointmentNotFound}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 99,
		NewStart:      mondayAt(11, 0),
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.False(t, resp.Found)
}

func TestExecute_StoreError(t *testing.T) {
	repo := &fakeRepo{updateErr: errors.New("db down")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 7,
		NewStart:      mondayAt(11, 0),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0, NewStart: mondayAt(11, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Время с секундами обходило бы минутную гранулярность правил расписания
	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 7, NewStart: mondayAt(17, 30).Add(30 * time.Second)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
