package update_shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftRepository "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/pkg/types"
)

type fakeShiftRepo struct {
	existing  *domain.Shift
	occupants []*domain.Shift
	updated   *domain.Shift
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, shiftRepository.ErrShiftNotFound
	}
	return f.existing, nil
}

func (f *fakeShiftRepo) GetWithFilter(_ context.Context, _ domain.ShiftsFilter) ([]*domain.Shift, error) {
	return f.occupants, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, s *domain.Shift) (*domain.Shift, error) {
	f.updated = s
	return s, nil
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetActive(_ context.Context, _, _ string) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeConfigProvider struct {
	duration int
	strict   bool
}

func (f *fakeConfigProvider) ShiftDuration(_ context.Context, _ string) (int, error) {
	return f.duration, nil
}

func (f *fakeConfigProvider) ValidateShiftUpdates(_ context.Context, _ string) (bool, error) {
	return f.strict, nil
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
		ID:           7,
		CompanyCode:  "cafe",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimeStart:    mustTime(t, "10:00"),
		Status:       domain.StatusConfirmed,
		Client:       "Maria",
		UnitBusiness: "central",
		PeopleQty:    4,
	}
}

func TestUseCase_Execute(t *testing.T) {
	tables := []*domain.Table{{Number: 1, Capacity: 10, Active: true}}
	existing := &domain.Shift{ID: 7, CompanyCode: "cafe"}

	t.Run("own reservation in full slot passes by default", func(t *testing.T) {
		// Слот заполнен, но собственная бронь уже среди занявших его
		shiftRepo := &fakeShiftRepo{
			existing: existing,
			occupants: []*domain.Shift{
				{ID: 7, PeopleQty: 4},
				{ID: 8, PeopleQty: 6},
			},
		}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		resp, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)

		assert.Equal(t, "11:00", resp.Shift.TimeEnd.String())
		require.NotNil(t, shiftRepo.updated)
	})

	t.Run("strict mode re-checks with own seats excluded", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{
			existing: existing,
			occupants: []*domain.Shift{
				{ID: 7, PeopleQty: 4},
				{ID: 8, PeopleQty: 6},
			},
		}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60, strict: true}, fakeTxManager{}, nopLogger{})

		// Без собственных мест занято 6 из 10: проверка проходит
		_, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)
	})

	t.Run("strict mode rejects when others fill the slot", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{
			existing: existing,
			occupants: []*domain.Shift{
				{ID: 7, PeopleQty: 4},
				{ID: 8, PeopleQty: 10},
			},
		}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60, strict: true}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))

		assert.ErrorIs(t, err, ErrShiftNotAvailable)
		assert.Nil(t, shiftRepo.updated)
	})

	t.Run("moving into a full slot is rejected", func(t *testing.T) {
		// Собственной брони нет среди занявших целевой слот
		shiftRepo := &fakeShiftRepo{
			existing:  existing,
			occupants: []*domain.Shift{{ID: 8, PeopleQty: 10}},
		}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))

		assert.ErrorIs(t, err, ErrShiftNotAvailable)
	})

	t.Run("moving into a slot with room succeeds", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{
			existing:  existing,
			occupants: []*domain.Shift{{ID: 8, PeopleQty: 5}},
		}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)
	})

	t.Run("unknown shift", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{}, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrShiftNotFound)
	})

	t.Run("accepts zero party size", func(t *testing.T) {
		shiftRepo := &fakeShiftRepo{existing: existing}
		uc := NewUseCase(shiftRepo, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		req := validRequest(t)
		req.PeopleQty = 0

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("rejects negative party size", func(t *testing.T) {
		uc := NewUseCase(&fakeShiftRepo{existing: existing}, &fakeTableRepo{tables: tables},
			&fakeConfigProvider{duration: 60}, fakeTxManager{}, nopLogger{})

		req := validRequest(t)
		req.PeopleQty = -2

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
