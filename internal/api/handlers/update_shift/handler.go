package update_shift

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	shiftModels "github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
	updateShift "github.com/m04kA/SMC-ShiftService/internal/usecase/update_shift"
)

const (
	msgInvalidBody       = "Cuerpo de la peticion invalido"
	msgInvalidDate       = "Formato de fecha invalido, se espera YYYY/MM/DD"
	msgShiftNotFound     = "Turno no encontrado"
	msgShiftNotAvailable = "Turno no disponible"
	msgInternalError     = "Error interno del servidor"
)

type Handler struct {
	useCase UpdateShiftUseCase
	logger  Logger
}

func NewHandler(useCase UpdateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shifts - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(middleware.CompanyCode(r))
	if err != nil {
		h.logger.Warn("PUT /shifts - Invalid date format: %v", err)
		handlers.RespondError(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateShift.ErrShiftNotFound):
			h.logger.Warn("PUT /shifts - Shift not found: id=%d", req.ID)
			handlers.RespondError(w, msgShiftNotFound)

		case errors.Is(err, updateShift.ErrShiftNotAvailable):
			h.logger.Warn("PUT /shifts - Slot full: id=%d, date=%s, time=%s",
				req.ID, req.Date, req.TimeStart)
			handlers.RespondError(w, msgShiftNotAvailable)

		case errors.Is(err, updateShift.ErrInvalidInput):
			h.logger.Warn("PUT /shifts - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("PUT /shifts - Failed: id=%d, error=%v", req.ID, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, shiftModels.FromDomainShift(result.Shift))
}
