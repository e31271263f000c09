package tables

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	GetByCompany(ctx context.Context, companyCode string) ([]*domain.Table, error)
	GetActive(ctx context.Context, companyCode, unitBusiness string) ([]*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
