package create_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	companiesService "github.com/m04kA/SMC-ShiftService/internal/service/companies"
	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

const (
	msgInvalidBody   = "Cuerpo de la peticion invalido"
	msgCompanyExists = "La empresa ya existe"
	msgInternalError = "Error interno del servidor"
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

// Handle POST /company
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /company - Invalid body: %v", err)
		handlers.RespondError(w, msgInvalidBody)
		return
	}

	company, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, companiesService.ErrCompanyExists):
			h.logger.Warn("POST /company - Company exists: code=%s", req.Code)
			handlers.RespondError(w, msgCompanyExists)

		case errors.Is(err, companiesService.ErrInvalidInput):
			h.logger.Warn("POST /company - Invalid input: %v", err)
			handlers.RespondError(w, err.Error())

		default:
			h.logger.Error("POST /company - Failed: code=%s, error=%v", req.Code, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, company)
}
