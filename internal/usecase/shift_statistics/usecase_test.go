package shift_statistics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

type fakeShiftRepo struct {
	shifts []*domain.Shift
	filter domain.ShiftsFilter
}

func (f *fakeShiftRepo) GetWithFilter(_ context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error) {
	f.filter = filter
	return f.shifts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("tallies statuses, people and distinct clients", func(t *testing.T) {
		repo := &fakeShiftRepo{shifts: []*domain.Shift{
			{Status: domain.StatusToConfirm, PeopleQty: 2, Client: "Maria"},
			{Status: domain.StatusConfirmed, PeopleQty: 4, Client: "Jose"},
			{Status: domain.StatusConfirmed, PeopleQty: 3, Client: "Maria"},
			{Status: domain.StatusCancelled, PeopleQty: 5, Client: "Lucia"},
			{Status: domain.StatusPaid, PeopleQty: 2, Client: ""},
		}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{CompanyCode: "cafe", Month: month})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.ToConfirm)
		assert.Equal(t, 2, resp.Confirmed)
		assert.Equal(t, 1, resp.Cancelled)
		assert.Equal(t, 1, resp.Paid)
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, 16, resp.People)
		// Пустой идентификатор клиента не считается
		assert.Equal(t, 3, resp.Clients)
	})

	t.Run("month bounds are first and last day in UTC", func(t *testing.T) {
		repo := &fakeShiftRepo{}
		uc := NewUseCase(repo, nopLogger{})

		// Любая дата внутри месяца даёт те же границы
		_, err := uc.Execute(context.Background(), &Request{
			CompanyCode: "cafe",
			Month:       time.Date(2026, 2, 17, 15, 4, 5, 0, time.UTC),
		})
		require.NoError(t, err)

		require.NotNil(t, repo.filter.StartDate)
		require.NotNil(t, repo.filter.EndDate)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *repo.filter.StartDate)
		assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *repo.filter.EndDate)
	})

	t.Run("empty month", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), &Request{CompanyCode: "cafe", Month: month})
		require.NoError(t, err)

		assert.Zero(t, resp.Total)
		assert.Zero(t, resp.Clients)
	})

	t.Run("company code required", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Month: month})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
