package list_tables

import (
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
)

const msgInternalError = "Error interno del servidor"

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

// Handle GET /tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.List(r.Context(), middleware.CompanyCode(r))
	if err != nil {
		h.logger.Error("GET /tables - Failed: %v", err)
		handlers.RespondError(w, msgInternalError)
		return
	}

	handlers.RespondData(w, tables)
}
