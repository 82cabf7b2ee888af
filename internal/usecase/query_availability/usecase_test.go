package query_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	reason   domain.ReasonCode
	checkErr error
	slots    []time.Time
}

func (f *fakeAvailability) CheckAvailability(context.Context, time.Time) (domain.ReasonCode, error) {
	if f.checkErr != nil {
		return domain.ReasonStoreError, f.checkErr
	}
	return f.reason, nil
}

func (f *fakeAvailability) FindAvailableSlots(context.Context, time.Time) ([]time.Time, error) {
	return f.slots, nil
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2025, 3, 3, hour, minute, 0, 0, time.UTC)
}

func TestExecute_Available(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{reason: domain.ReasonAvailable}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: mondayAt(10, 0)})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, domain.ReasonAvailable, resp.Reason)
	assert.Empty(t, resp.Suggestions)
}

func TestExecute_UnavailableWithSuggestions(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{
		reason: domain.ReasonSlotBooked,
		slots:  []time.Time{mondayAt(11, 0)},
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Start: mondayAt(10, 0)})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, domain.ReasonSlotBooked, resp.Reason)
	assert.Equal(t, []time.Time{mondayAt(11, 0)}, resp.Suggestions)
}

func TestExecute_StoreError(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{checkErr: errors.New("db down")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Start: mondayAt(10, 0)})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MissingStart(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{reason: domain.ReasonAvailable}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SubMinuteStart(t *testing.T) {
	uc := NewUseCase(&fakeAvailability{reason: domain.ReasonAvailable}, nopLogger{})

	// 17:30:30 при получасовом слоте заканчивался бы в 18:00:30, но сравнение
	// рабочих часов идёт с точностью до минуты, поэтому секунды отклоняются на входе
	_, err := uc.Execute(context.Background(), &Request{Start: mondayAt(17, 30).Add(30 * time.Second)})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
