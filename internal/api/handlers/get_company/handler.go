package get_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	companiesService "github.com/m04kA/SMC-ShiftService/internal/service/companies"
)

const (
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

// Handle GET /company
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := middleware.CompanyCode(r)

	company, err := h.service.Get(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, companiesService.ErrCompanyNotFound):
			h.logger.Warn("GET /company - Company not found: code=%s", code)
			handlers.RespondError(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /company - Failed: code=%s, error=%v", code, err)
			handlers.RespondError(w, msgInternalError)
		}
		return
	}

	handlers.RespondData(w, company)
}
