package create_table

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
	msgTableExists   = "La mesa ya existe"
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

// Handle POST /tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}
	req.CompanyCode = middleware.CompanyCode(r)

	table, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tablesService.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		case errors.Is(err, tablesService.ErrTableExists):
			h.logger.Warn("POST /tables - Duplicate table: %v", err)
			handlers.RespondError(w, msgTableExists)

		default:
			h.logger.Error("POST /tables - Failed: %v", err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, table)
}
