package update_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	settingsService "github.com/m04kA/SMC-ShiftService/internal/service/settings"
	"github.com/m04kA/SMC-ShiftService/internal/service/settings/models"
)

const (
	msgInvalidBody     = "Cuerpo de la peticion invalido"
	msgConfigNotFound  = "Configuracion no encontrada"
	msgInvalidValue    = "Valor de configuracion invalido"
	msgInternalError   = "Error interno del servidor"
)

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

// Handle PUT /configs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /configs - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}
	req.CompanyCode = middleware.CompanyCode(r)

	config, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrSettingNotFound):
			h.logger.Warn("PUT /configs - Setting not found: code=%s", req.Code)
			handlers.RespondError(w, msgConfigNotFound)

		case errors.Is(err, settingsService.ErrInvalidValue):
			h.logger.Warn("PUT /configs - Invalid value: code=%s, error=%v", req.Code, err)
			handlers.RespondError(w, msgInvalidValue)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /configs - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("PUT /configs - Failed: code=%s, error=%v", req.Code, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, config)
}
