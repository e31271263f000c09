package update_table

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
)

type TablesService interface {
	Update(ctx context.Context, req *models.UpdateTableRequest) (*models.TableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
