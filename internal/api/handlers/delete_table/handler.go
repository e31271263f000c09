package delete_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	tablesService "github.com/m04kA/SMC-ShiftService/internal/service/tables"
)

const (
	msgInvalidID     = "ID de mesa invalido"
	msgTableNotFound = "Mesa no encontrada"
	msgTableDeleted  = "Mesa eliminada"
	msgInternalError = "Error interno del servidor"
)

type Handler struct {
	service TablesService
	logger  Logger
}

func NewHandler(service TablesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["tableId"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondError(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tablesService.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: id=%d", id)
			handlers.RespondError(w, msgTableNotFound)

		case errors.Is(err, tablesService.ErrInvalidInput):
			h.logger.Warn("DELETE /tables/{id} - Invalid input: %v", err)
			handlers.RespondError(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondMessage(w, msgTableDeleted)
}
