package create_shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

type fakeShiftRepo struct {
	occupants []*domain.Shift
	created   *domain.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s *domain.Shift) (*domain.Shift, error) {
	s.ID = 42
	f.created = s
	return s, nil
}

func (f *fakeShiftRepo) GetWithFilter(_ context.Context, _ domain.ShiftsFilter) ([]*domain.Shift, error) {
	return f.occupants, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetActive(_ context.Context, _, _ string) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeConfigProvider struct {
	duration int
}

func (f *fakeConfigProvider) ShiftDuration(_ context.Context, _ string) (int, error) {
	return f.duration, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		CompanyCode:  "cafe",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimeStart:    mustTime(t, "10:00"),
		Client:       "Maria",
		UnitBusiness: "central",
		PeopleQty:    3,
	}
}

func TestUseCase_Execute(t *testing.T) {
	tables := []*domain.Table{
		{Number: 1, Capacity: 4, Active: true},
		{Number: 2, Capacity: 6, Active: true},
	}

	t.Run("creates shift with computed time end", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 90}, fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.Shift.ID)
		assert.Equal(t, "11:30", resp.Shift.TimeEnd.String())
		assert.Equal(t, domain.StatusToConfirm, resp.Shift.Status)
	})

	t.Run("rejects when occupancy reaches capacity", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{occupants: []*domain.Shift{
			{PeopleQty: 6, Status: domain.StatusConfirmed},
			{PeopleQty: 4, Status: domain.StatusToConfirm},
		}}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))

		assert.ErrorIs(t, err, ErrShiftNotAvailable)
		assert.Nil(t, shiftRepo.created)
	})

	t.Run("accepts while one seat remains", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{occupants: []*domain.Shift{
			{PeopleQty: 9, Status: domain.StatusConfirmed},
		}}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)
		require.NotNil(t, shiftRepo.created)
	})

	t.Run("cancelled occupants still count", func(t *testing.T) {
		// Подсчёт занятости слота не фильтрует по статусу
		shiftRepo := &fakeShiftRepo{occupants: []*domain.Shift{
			{PeopleQty: 10, Status: domain.StatusCancelled},
		}}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))

		assert.ErrorIs(t, err, ErrShiftNotAvailable)
	})

	t.Run("accepts zero party size", func(t *testing.T) {
		repo := &fakeShiftRepo{}
		uc := NewUseCase(repo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		req := validRequest(t)
		req.PeopleQty = 0

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("rejects negative party size", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{}, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		req := validRequest(t)
		req.PeopleQty = -1

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
