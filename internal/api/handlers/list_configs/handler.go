package list_configs

import (
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
)

const msgInternalError = "Error interno del servidor"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /configs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	configs, err := h.service.List(r.Context(), middleware.CompanyCode(r))
	if err != nil {
		h.logger.Error("GET /configs - Failed: %v", err)
		handlers.RespondError(w, msgInternalError)
		return
	}

	handlers.RespondData(w, configs)
}
