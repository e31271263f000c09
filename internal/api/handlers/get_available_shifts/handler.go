package get_available_shifts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	getAvailableShifts "github.com/m04kA/SMC-ShiftService/internal/usecase/get_available_shifts"
)

const (
	msgMissingDate         = "La fecha es obligatoria"
	msgInvalidDate         = "Formato de fecha invalido, se espera YYYY/MM/DD"
	msgMissingUnitBusiness = "La unidad de negocio es obligatoria"
	msgScheduleNotFound    = "Horario no configurado para el dia"
	msgInvalidSchedule     = "Horario configurado invalido"
	msgInternalError       = "Error interno del servidor"
)

type Handler struct {
	useCase GetAvailableShiftsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableShiftsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /shifts/availables
// Query params: date (required, YYYY/MM/DD), unitBusiness (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shifts/availables - Missing date")
		handlers.RespondError(w, msgMissingDate)
		return
	}

	unitBusiness := r.URL.Query().Get("unitBusiness")
	if unitBusiness == "" {
		h.logger.Warn("GET /shifts/availables - Missing unit business")
		handlers.RespondError(w, msgMissingUnitBusiness)
		return
	}

	useCaseReq, err := ToUseCaseRequest(middleware.CompanyCode(r), unitBusiness, dateStr)
	if err != nil {
		h.logger.Warn("GET /shifts/availables - Invalid date format: %v", err)
		handlers.RespondError(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableShifts.ErrScheduleNotConfigured):
			h.logger.Warn("GET /shifts/availables - No schedule: date=%s", dateStr)
			handlers.RespondError(w, msgScheduleNotFound)

		case errors.Is(err, getAvailableShifts.ErrInvalidSchedule):
			h.logger.Warn("GET /shifts/availables - Bad schedule: %v", err)
			handlers.RespondError(w, msgInvalidSchedule)

		case errors.Is(err, getAvailableShifts.ErrInvalidInput):
			h.logger.Warn("GET /shifts/availables - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("GET /shifts/availables - Failed: date=%s, unit=%s, error=%v",
				dateStr, unitBusiness, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, FromUseCaseResponse(result))
}
