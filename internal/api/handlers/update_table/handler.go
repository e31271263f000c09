package update_table

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	tablesService "github.com/m04kA/SMC-ShiftService/internal/service/tables"
	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
)

const (
	msgInvalidBody   = "Cuerpo de la peticion invalido"
	msgTableNotFound = "Mesa no encontrada"
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

// Handle PUT /tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}
	req.CompanyCode = middleware.CompanyCode(r)

	table, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tablesService.ErrTableNotFound):
			h.logger.Warn("PUT /tables - Table not found: id=%d", req.ID)
			handlers.RespondError(w, msgTableNotFound)

		case errors.Is(err, tablesService.ErrInvalidInput):
			h.logger.Warn("PUT /tables - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("PUT /tables - Failed: id=%d, error=%v", req.ID, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, table)
}
