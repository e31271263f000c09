package delete_shift

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	shiftsService "github.com/m04kA/SMC-ShiftService/internal/service/shifts"
)

const (
	msgInvalidID     = "ID de turno invalido"
	msgShiftNotFound = "Turno no encontrado"
	msgShiftDeleted  = "Turno eliminado"
	msgInternalError = "Error interno del servidor"
)

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /shifts/{shiftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["shiftId"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /shifts/{id} - Invalid shift ID: %v", err)
		handlers.RespondError(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("DELETE /shifts/{id} - Shift not found: id=%d", id)
			handlers.RespondError(w, msgShiftNotFound)

		case errors.Is(err, shiftsService.ErrInvalidInput):
			h.logger.Warn("DELETE /shifts/{id} - Invalid input: %v", err)
			handlers.RespondError(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /shifts/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondMessage(w, msgShiftDeleted)
}
