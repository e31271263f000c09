package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
	"github.com/m04kA/SMC-ShiftService/pkg/ptr"
)

type fakeTableRepo struct {
	createErr error
	created   *domain.Table
}

func (f *fakeTableRepo) Create(_ context.Context, t *domain.Table) (*domain.Table, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	t.ID = 1
	f.created = t
	return t, nil
}

func (f *fakeTableRepo) GetByID(context.Context, int64) (*domain.Table, error) { return nil, nil }
func (f *fakeTableRepo) GetByCompany(context.Context, string) ([]*domain.Table, error) {
	return nil, nil
}
func (f *fakeTableRepo) GetActive(context.Context, string, string) ([]*domain.Table, error) {
	return nil, nil
}
func (f *fakeTableRepo) Update(_ context.Context, t *domain.Table) (*domain.Table, error) {
	return t, nil
}
func (f *fakeTableRepo) Delete(context.Context, int64) error { return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	t.Run("duplicate number in unit maps to ErrTableExists", func(t *testing.T) {
		repo := &fakeTableRepo{createErr: tableRepo.ErrTableExists}
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), &models.CreateTableRequest{
			CompanyCode:  "resto",
			Number:       3,
			Capacity:     4,
			UnitBusiness: "salon",
		})

		assert.ErrorIs(t, err, ErrTableExists)
	})

	t.Run("nil active defaults to true", func(t *testing.T) {
		repo := &fakeTableRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateTableRequest{
			CompanyCode:  "resto",
			Number:       3,
			Capacity:     4,
			UnitBusiness: "salon",
		})

		require.NoError(t, err)
		assert.True(t, resp.Active)
	})

	t.Run("explicit active false is kept", func(t *testing.T) {
		repo := &fakeTableRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), &models.CreateTableRequest{
			CompanyCode:  "resto",
			Number:       3,
			Capacity:     4,
			UnitBusiness: "salon",
			Active:       ptr.Ptr(false),
			Description:  ptr.Ptr("terraza"),
		})

		require.NoError(t, err)
		assert.False(t, resp.Active)
		require.NotNil(t, resp.Description)
		assert.Equal(t, "terraza", *resp.Description)
	})

	t.Run("invalid number rejected", func(t *testing.T) {
		svc := NewService(&fakeTableRepo{}, nopLogger{})

		_, err := svc.Create(context.Background(), &models.CreateTableRequest{
			CompanyCode:  "resto",
			Number:       0,
			Capacity:     4,
			UnitBusiness: "salon",
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
