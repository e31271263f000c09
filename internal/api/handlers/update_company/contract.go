package update_company

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

type CompaniesService interface {
	Update(ctx context.Context, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
