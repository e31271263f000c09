package create_shift

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// UseCase use case создания брони с проверкой вместимости слота
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

// Execute выполняет use case создания брони.
// Проверка вместимости и вставка идут в одной сериализуемой транзакции,
// чтобы два одновременных запроса не заняли последние места дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateShift: company=%s, unit=%s, date=%s, time=%s, people=%d",
		req.CompanyCode, req.UnitBusiness, req.Date.Format(domain.DateFormat), req.TimeStart, req.PeopleQty)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateShift: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность турно: время окончания всегда вычисляется здесь
	duration, err := uc.configProvider.ShiftDuration(ctx, req.CompanyCode)
	if err != nil {
		uc.logger.Error("CreateShift: failed to get shift duration: %v", err)
		return nil, fmt.Errorf("%w: failed to get shift duration: %v", ErrInternal, err)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusToConfirm
	}

	shift := &domain.Shift{
		CompanyCode:  req.CompanyCode,
		Date:         req.Date,
		TimeStart:    req.TimeStart,
		TimeEnd:      req.TimeStart.AddMinutes(duration),
		Status:       status,
		Client:       req.Client,
		UnitBusiness: req.UnitBusiness,
		TableNumber:  req.TableNumber,
		PeopleQty:    req.PeopleQty,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Description:  req.Description,
	}

	// 3. Проверка вместимости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Брони этого слота, все статусы: так считает и админ-панель
		occupants, err := uc.shiftRepo.GetWithFilter(txCtx, domain.ShiftsFilter{
			CompanyCode:  req.CompanyCode,
			UnitBusiness: &req.UnitBusiness,
			Date:         &req.Date,
			TimeStart:    &req.TimeStart,
		})
		if err != nil {
			uc.logger.Error("CreateShift: failed to get slot occupants: %v", err)
			return fmt.Errorf("%w: failed to get slot occupants: %v", ErrInternal, err)
		}

		// 3.2. Вместимость точки
		tables, err := uc.tableRepo.GetActive(txCtx, req.CompanyCode, req.UnitBusiness)
		if err != nil {
			uc.logger.Error("CreateShift: failed to get tables: %v", err)
			return fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
		}
		capacity := domain.TotalCapacity(tables)

		// 3.3. Заполненный слот не принимает новые брони
		occupied := 0
		for _, s := range occupants {
			occupied += s.PeopleQty
		}
		if capacity <= occupied {
			uc.logger.Warn("CreateShift: slot %s full (capacity=%d, occupied=%d)",
				req.TimeStart, capacity, occupied)
			return ErrShiftNotAvailable
		}

		// 3.4. Вставляем бронь в той же транзакции
		created, err := uc.shiftRepo.Create(txCtx, shift)
		if err != nil {
			uc.logger.Error("CreateShift: failed to create shift: %v", err)
			return fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
		}
		shift = created

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateShift: shift id=%d created", shift.ID)
	return &Response{Shift: shift}, nil
}
