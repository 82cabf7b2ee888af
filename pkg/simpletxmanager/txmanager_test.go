package simpletxmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBot/pkg/dbmetrics"
)

func TestDoSerializable_Commit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewTransactionManager(db)
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		// Транзакция должна быть видна репозиториям через контекст
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RollbackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	m := NewTransactionManager(db)
	err = m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	m := NewTransactionManager(db)
	err = m.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
