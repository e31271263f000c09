package update_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	companiesService "github.com/m04kA/SMC-ShiftService/internal/service/companies"
	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

const (
	msgInvalidBody     = "Cuerpo de la peticion invalido"
	msgCompanyNotFound = "Empresa no encontrada"
	msgInternalError   = "Error interno del servidor"
)

type Handler struct {
	service CompaniesService
	logger  Logger
}

func NewHandler(service CompaniesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /company
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /company - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}
	req.Code = middleware.CompanyCode(r)

	company, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, companiesService.ErrCompanyNotFound):
			h.logger.Warn("PUT /company - Company not found: code=%s", req.Code)
			handlers.RespondError(w, msgCompanyNotFound)

		case errors.Is(err, companiesService.ErrInvalidInput):
			h.logger.Warn("PUT /company - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("PUT /company - Failed: code=%s, error=%v", req.Code, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, company)
}
