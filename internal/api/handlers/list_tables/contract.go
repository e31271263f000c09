package list_tables

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
)

type TablesService interface {
	List(ctx context.Context, companyCode string) ([]*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
