package shifts

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория броней
type ShiftRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	GetWithFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
