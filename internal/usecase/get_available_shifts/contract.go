package get_available_shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// ShiftRepository интерфейс репозитория броней
type ShiftRepository interface {
	// GetWithFilter получает брони по фильтру
	GetWithFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	// GetActive получает активные столы точки компании
	GetActive(ctx context.Context, companyCode, unitBusiness string) ([]*domain.Table, error)
}

// ConfigProvider поставщик настроек компании.
// Инжектируется снаружи: расчёт слотов не знает, где хранятся настройки.
type ConfigProvider interface {
	ShiftDuration(ctx context.Context, companyCode string) (int, error)
	DaySchedule(ctx context.Context, companyCode string, weekday time.Weekday) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
