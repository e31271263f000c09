package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
)

type fakeTx struct{}

func (fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (fakeTx) Commit() error                                                    { return nil }
func (fakeTx) Rollback() error                                                  { return nil }

// txContext контекст с уже открытой транзакцией: run переиспользует её,
// что позволяет проверить логику повторов без настоящей БД
func txContext() context.Context {
	return dbmetrics.WithTx(context.Background(), fakeTx{})
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	m := NewTransactionManager(nil)

	calls := 0
	err := m.DoSerializable(txContext(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	m := NewTransactionManager(nil)

	calls := 0
	err := m.DoSerializable(txContext(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("insert shift: %w", &pq.Error{Code: "40001"})
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, calls)

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))
}

func TestDoSerializable_OtherErrorsAreNotRetried(t *testing.T) {
	m := NewTransactionManager(nil)

	wantErr := errors.New("capacity exceeded")
	calls := 0
	err := m.DoSerializable(txContext(), func(ctx context.Context) error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.False(t, isSerializationFailure(nil))
	assert.False(t, isSerializationFailure(errors.New("plain")))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.True(t, isSerializationFailure(&pq.Error{Code: "40001"}))
}
