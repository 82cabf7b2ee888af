package cancel_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	storage "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	deleteErr  error
	deletedIDs []int64
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 17})

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, []int64{17}, repo.deletedIDs)
}

func TestExecute_NotFoundIsIdempotent(t *testing.T) {
	repo := &fakeRepo{deleteErr: storage.ErrAppointmentNotFound}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 17})

	// Отсутствие записи не является ошибкой
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestExecute_StoreError(t *testing.T) {
	repo := &fakeRepo{deleteErr: errors.New("db down")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 17})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
