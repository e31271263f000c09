package shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
)

// Service сервис для чтения и удаления броней.
// Создание и редактирование идут через use case'ы с валидацией вместимости.
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// ListByDay возвращает брони компании на день, опционально по одной точке
func (s *Service) ListByDay(ctx context.Context, req *models.ListShiftsRequest) ([]*models.ShiftResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter := domain.ShiftsFilter{
		CompanyCode:  req.CompanyCode,
		Date:         &req.Date,
		UnitBusiness: req.UnitBusiness,
	}

	shifts, err := s.shiftRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDay - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShifts(shifts), nil
}

// Delete удаляет бронь
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	err := s.shiftRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Delete: shift id=%d not found", id)
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: shift id=%d deleted", id)
	return nil
}
