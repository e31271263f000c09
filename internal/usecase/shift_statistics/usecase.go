package shift_statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// UseCase use case месячной статистики броней
type UseCase struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shiftRepo ShiftRepository, logger Logger) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// Execute считает сводку за календарный месяц.
// Границы месяца считаются в UTC: один и тот же запрос даёт один и тот
// же срез независимо от часового пояса сервера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ShiftStatistics: company=%s, month=%s",
		req.CompanyCode, req.Month.Format(domain.StatsMonthFormat))

	// 1. Валидация входных данных
	if req.CompanyCode == "" {
		return nil, fmt.Errorf("%w: companyCode is required", ErrInvalidInput)
	}
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	// 2. Границы месяца в UTC, последний день включительно
	firstDay := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// 3. Все брони месяца, статусы не фильтруются
	shifts, err := uc.shiftRepo.GetWithFilter(ctx, domain.ShiftsFilter{
		CompanyCode: req.CompanyCode,
		StartDate:   &firstDay,
		EndDate:     &lastDay,
	})
	if err != nil {
		uc.logger.Error("ShiftStatistics: failed to get shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
	}

	// 4. Сводка по статусам, гостям и уникальным клиентам
	resp := &Response{Month: firstDay}
	clients := make(map[string]struct{})

	for _, s := range shifts {
		switch s.Status {
		case domain.StatusToConfirm:
			resp.ToConfirm++
		case domain.StatusConfirmed:
			resp.Confirmed++
		case domain.StatusCancelled:
			resp.Cancelled++
		case domain.StatusPaid:
			resp.Paid++
		}

		resp.Total++
		resp.People += s.PeopleQty

		if s.Client != "" {
			clients[s.Client] = struct{}{}
		}
	}
	resp.Clients = len(clients)

	uc.logger.Info("ShiftStatistics: total=%d, people=%d, clients=%d",
		resp.Total, resp.People, resp.Clients)

	return resp, nil
}
