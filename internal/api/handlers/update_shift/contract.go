package update_shift

import (
	"context"

	updateShift "github.com/m04kA/SMC-ShiftService/internal/usecase/update_shift"
)

type UpdateShiftUseCase interface {
	Execute(ctx context.Context, req *updateShift.Request) (*updateShift.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
