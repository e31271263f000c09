package get_company

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

type CompaniesService interface {
	Get(ctx context.Context, code string) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
