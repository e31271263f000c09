package companies

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByCode(ctx context.Context, code string) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
}

// SettingsSeeder посев настроек по умолчанию для новой компании
type SettingsSeeder interface {
	SeedDefaults(ctx context.Context, companyCode string) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
