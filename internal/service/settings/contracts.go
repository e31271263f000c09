package settings

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// SettingRepository интерфейс репозитория настроек
type SettingRepository interface {
	CreateMany(ctx context.Context, settings []*domain.Setting) error
	GetByCompany(ctx context.Context, companyCode string) ([]*domain.Setting, error)
	GetByCode(ctx context.Context, companyCode, code string) (*domain.Setting, error)
	Update(ctx context.Context, setting *domain.Setting) (*domain.Setting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
