package shift_statistics

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftStatistics "github.com/m04kA/SMC-ShiftService/internal/usecase/shift_statistics"
)

const (
	msgMissingMonth  = "La fecha es obligatoria"
	msgInvalidMonth  = "Formato de fecha invalido, se espera MM/YYYY"
	msgInternalError = "Error interno del servidor"
)

type Handler struct {
	useCase ShiftStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase ShiftStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /shifts/statistics
// Query params: date (required, MM/YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("date")
	if monthStr == "" {
		h.logger.Warn("GET /shifts/statistics - Missing month")
		handlers.RespondError(w, msgMissingMonth)
		return
	}

	month, err := time.Parse(domain.StatsMonthFormat, monthStr)
	if err != nil {
		h.logger.Warn("GET /shifts/statistics - Invalid month format: %v", err)
		handlers.RespondError(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &shiftStatistics.Request{
		CompanyCode: middleware.CompanyCode(r),
		Month:       month,
	})
	if err != nil {
		switch {
		case errors.Is(err, shiftStatistics.ErrInvalidInput):
			h.logger.Warn("GET /shifts/statistics - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("GET /shifts/statistics - Failed: month=%s, error=%v", monthStr, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, result)
}
