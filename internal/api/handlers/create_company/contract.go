package create_company

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

type CompaniesService interface {
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
