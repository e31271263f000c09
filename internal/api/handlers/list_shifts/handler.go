package list_shifts

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

const (
	msgMissingDate   = "La fecha es obligatoria"
	msgInvalidDate   = "Formato de fecha invalido, se espera YYYY/MM/DD"
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

// Handle GET /shifts
// Query params: date (required, YYYY/MM/DD), unitBusiness (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shifts - Missing date")
		handlers.RespondError(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /shifts - Invalid date format: %v", err)
		handlers.RespondError(w, msgInvalidDate)
		return
	}

	req := &models.ListShiftsRequest{
		CompanyCode: middleware.CompanyCode(r),
		Date:        date,
	}
	if unit := r.URL.Query().Get("unitBusiness"); unit != "" {
		req.UnitBusiness = &unit
	}

	shifts, err := h.service.ListByDay(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /shifts - Failed: date=%s, error=%v", dateStr, err)
		handlers.RespondError(w, msgInternalError)
		return
	}

	handlers.RespondData(w, shifts)
}
