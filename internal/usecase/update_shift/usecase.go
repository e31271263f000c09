package update_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/shift"
)

// UseCase use case обновления брони.
// Исторически редактирование проходило без повторной проверки вместимости:
// если редактируемая бронь уже стоит в целевом слоте, она считается
// занявшей место и пропускается. Настройка validateShiftUpdates включает
// строгий режим, где её собственные места исключаются и проверка
// выполняется заново.
type UseCase struct {
	shiftRepo      ShiftRepository
	tableRepo      TableRepository
	configProvider ConfigProvider
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	tableRepo TableRepository,
	configProvider ConfigProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:      shiftRepo,
		tableRepo:      tableRepo,
		configProvider: configProvider,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case обновления брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateShift: id=%d, company=%s, unit=%s, date=%s, time=%s",
		req.ID, req.CompanyCode, req.UnitBusiness, req.Date.Format(domain.DateFormat), req.TimeStart)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateShift: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронь должна существовать
	if _, err := uc.shiftRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Warn("UpdateShift: shift id=%d not found", req.ID)
			return nil, ErrShiftNotFound
		}
		uc.logger.Error("UpdateShift: failed to get shift id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
	}

	// 3. Длительность турно и режим проверки
	duration, err := uc.configProvider.ShiftDuration(ctx, req.CompanyCode)
	if err != nil {
		uc.logger.Error("UpdateShift: failed to get shift duration: %v", err)
		return nil, fmt.Errorf("%w: failed to get shift duration: %v", ErrInternal, err)
	}

	strictUpdates, err := uc.configProvider.ValidateShiftUpdates(ctx, req.CompanyCode)
	if err != nil {
		uc.logger.Error("UpdateShift: failed to get validateShiftUpdates: %v", err)
		return nil, fmt.Errorf("%w: failed to get validateShiftUpdates: %v", ErrInternal, err)
	}

	shift := &domain.Shift{
		ID:           req.ID,
		CompanyCode:  req.CompanyCode,
		Date:         req.Date,
		TimeStart:    req.TimeStart,
		TimeEnd:      req.TimeStart.AddMinutes(duration),
		Status:       req.Status,
		Client:       req.Client,
		UnitBusiness: req.UnitBusiness,
		TableNumber:  req.TableNumber,
		PeopleQty:    req.PeopleQty,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Description:  req.Description,
		Notificated:  req.Notificated,
	}

	// 4. Проверка вместимости и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		occupants, err := uc.shiftRepo.GetWithFilter(txCtx, domain.ShiftsFilter{
			CompanyCode:  req.CompanyCode,
			UnitBusiness: &req.UnitBusiness,
			Date:         &req.Date,
			TimeStart:    &req.TimeStart,
		})
		if err != nil {
			uc.logger.Error("UpdateShift: failed to get slot occupants: %v", err)
			return fmt.Errorf("%w: failed to get slot occupants: %v", ErrInternal, err)
		}

		if err := uc.checkCapacity(txCtx, req, occupants, strictUpdates); err != nil {
			return err
		}

		updated, err := uc.shiftRepo.Update(txCtx, shift)
		if err != nil {
			if errors.Is(err, shiftRepo.ErrShiftNotFound) {
				return ErrShiftNotFound
			}
			uc.logger.Error("UpdateShift: failed to update shift id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update shift: %v", ErrInternal, err)
		}
		shift = updated

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateShift: shift id=%d updated", shift.ID)
	return &Response{Shift: shift}, nil
}

// checkCapacity проверяет вместимость целевого слота.
// Если редактируемая бронь уже среди занявших слот, обычный режим
// пропускает проверку целиком; строгий режим исключает её собственные
// места и проверяет остаток заново.
func (uc *UseCase) checkCapacity(ctx context.Context, req *Request, occupants []*domain.Shift, strict bool) error {
	ownsSlot := false
	occupied := 0
	for _, s := range occupants {
		if s.ID == req.ID {
			ownsSlot = true
			continue
		}
		occupied += s.PeopleQty
	}

	if ownsSlot && !strict {
		return nil
	}

	tables, err := uc.tableRepo.GetActive(ctx, req.CompanyCode, req.UnitBusiness)
	if err != nil {
		uc.logger.Error("UpdateShift: failed to get tables: %v", err)
		return fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	capacity := domain.TotalCapacity(tables)

	if capacity <= occupied {
		uc.logger.Warn("UpdateShift: slot %s full (capacity=%d, occupied=%d)",
			req.TimeStart, capacity, occupied)
		return ErrShiftNotAvailable
	}

	return nil
}
