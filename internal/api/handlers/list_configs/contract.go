package list_configs

import (
	"context"

	"github.com/m04kA/SMC-ShiftService/internal/service/settings/models"
)

type SettingsService interface {
	List(ctx context.Context, companyCode string) ([]*models.SettingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
