package create_table

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
)

type TablesService interface {
	Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
