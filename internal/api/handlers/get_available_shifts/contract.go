package get_available_shifts

import (
	"context"

	getAvailableShifts "github.com/m04kA/SMC-ShiftService/internal/usecase/get_available_shifts"
)

type GetAvailableShiftsUseCase interface {
	Execute(ctx context.Context, req *getAvailableShifts.Request) (*getAvailableShifts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
