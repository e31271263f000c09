package create_shift

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория броней
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	GetWithFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetActive(ctx context.Context, companyCode, unitBusiness string) ([]*domain.Table, error)
}

// ConfigProvider поставщик настроек компании
type ConfigProvider interface {
	ShiftDuration(ctx context.Context, companyCode string) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
