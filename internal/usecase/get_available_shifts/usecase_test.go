package get_available_shifts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/settings"
)

type fakeShiftRepo struct {
	shifts []*domain.Shift
	filter domain.ShiftsFilter
}

func (f *fakeShiftRepo) GetWithFilter(_ context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error) {
	f.filter = filter
	return f.shifts, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetActive(_ context.Context, _, _ string) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeConfigProvider struct {
	duration    int
	schedule    string
	scheduleErr error
}

func (f *fakeConfigProvider) ShiftDuration(_ context.Context, _ string) (int, error) {
	return f.duration, nil
}

func (f *fakeConfigProvider) DaySchedule(_ context.Context, _ string, _ time.Weekday) (string, error) {
	return f.schedule, f.scheduleErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday

	tables := []*domain.Table{
		{Number: 1, Capacity: 4, Active: true},
		{Number: 2, Capacity: 6, Active: true},
	}

	t.Run("full day without reservations", func(t *testing.T) {
		uc := NewUseCase(
			&fakeShiftRepo{},
			&fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60, schedule: "09:00-12:00"},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			CompanyCode:  "cafe",
			UnitBusiness: "central",
			Date:         date,
		})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 3)
		assert.Equal(t, "9:00", resp.Slots[0].InitialTime.String())
		assert.Equal(t, 10, resp.Slots[0].Availables)
		assert.Equal(t, "10:00", resp.Slots[1].InitialTime.String())
		assert.Equal(t, "11:00", resp.Slots[2].InitialTime.String())
	})

	t.Run("reservations reduce their slots", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{shifts: []*domain.Shift{
			{TimeStart: mustTime(t, "10:00"), PeopleQty: 3, Status: domain.StatusConfirmed},
		}}

		uc := NewUseCase(
			shiftRepo,
			&fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60, schedule: "09:00-12:00"},
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{
			CompanyCode:  "cafe",
			UnitBusiness: "central",
			Date:         date,
		})
		require.NoError(t, err)

		assert.Equal(t, 10, resp.Slots[0].Availables)
		assert.Equal(t, 7, resp.Slots[1].Availables)

		// Отменённые отфильтровываются на уровне запроса
		assert.True(t, shiftRepo.filter.ExcludeCancelled)
	})

	t.Run("schedule not configured", func(t *testing.T) {
		uc := NewUseCase(
			&fakeShiftRepo{},
			&fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60, scheduleErr: settings.ErrScheduleNotConfigured},
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{
			CompanyCode:  "cafe",
			UnitBusiness: "central",
			Date:         date,
		})
		assert.ErrorIs(t, err, ErrScheduleNotConfigured)
	})

	t.Run("missing unit business", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{}, &fakeTableRepo{}, &fakeConfigProvider{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{
			CompanyCode: "cafe",
			Date:        date,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
