package create_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	shiftModels "github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
	createShift "github.com/m04kA/SMC-ShiftService/internal/usecase/create_shift"
)

const (
	msgInvalidBody       = "Cuerpo de la peticion invalido"
	msgInvalidDate       = "Formato de fecha invalido, se espera YYYY/MM/DD"
	msgShiftNotAvailable = "Turno no disponible"
	msgInternalError     = "Error interno del servidor"
)

type Handler struct {
	useCase CreateShiftUseCase
	logger  Logger
}

func NewHandler(useCase CreateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shifts - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.CompanyCode(r))
	if err != nil {
		h.logger.Warn("POST /shifts - Invalid date format: %v", err)
		handlers.RespondError(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createShift.ErrShiftNotAvailable):
			h.logger.Warn("POST /shifts - Slot full: date=%s, time=%s",
				req.Date, req.TimeStart)
			handlers.RespondError(w, msgShiftNotAvailable)

		case errors.Is(err, createShift.ErrInvalidInput):
			h.logger.Warn("POST /shifts - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("POST /shifts - Failed: %v", err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, shiftModels.FromDomainShift(result.Shift))
}
