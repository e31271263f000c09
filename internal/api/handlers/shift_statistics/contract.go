package shift_statistics

import (
	"context"

	shiftStatistics "github.com/m04kA/SMC-ShiftService/internal/usecase/shift_statistics"
)

type ShiftStatisticsUseCase interface {
	Execute(ctx context.Context, req *shiftStatistics.Request) (*shiftStatistics.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
