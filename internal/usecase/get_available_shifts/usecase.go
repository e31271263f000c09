package get_available_shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/settings"
)

// UseCase use case расчёта доступности слотов на день
type UseCase struct {
	shiftRepo      ShiftRepository
	tableRepo      TableRepository
	configProvider ConfigProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	tableRepo TableRepository,
	configProvider ConfigProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:      shiftRepo,
		tableRepo:      tableRepo,
		configProvider: configProvider,
		logger:         logger,
	}
}

// Execute выполняет расчёт доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableShifts: company=%s, unit=%s, date=%s",
		req.CompanyCode, req.UnitBusiness, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableShifts: validation failed: %v", err)
		return nil, err
	}

	// 2. Расписание дня недели
	schedule, err := uc.configProvider.DaySchedule(ctx, req.CompanyCode, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, settings.ErrScheduleNotConfigured) {
			uc.logger.Warn("GetAvailableShifts: no schedule for %s, company=%s",
				req.Date.Weekday(), req.CompanyCode)
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GetAvailableShifts: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Длительность слота
	duration, err := uc.configProvider.ShiftDuration(ctx, req.CompanyCode)
	if err != nil {
		uc.logger.Error("GetAvailableShifts: failed to get shift duration: %v", err)
		return nil, fmt.Errorf("%w: failed to get shift duration: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку слотов дня
	ranges, err := parseScheduleRanges(schedule)
	if err != nil {
		uc.logger.Warn("GetAvailableShifts: bad schedule %q: %v", schedule, err)
		return nil, err
	}
	slots := generateSlots(ranges, duration)

	// 5. Общая вместимость точки: сумма мест активных столов
	tables, err := uc.tableRepo.GetActive(ctx, req.CompanyCode, req.UnitBusiness)
	if err != nil {
		uc.logger.Error("GetAvailableShifts: failed to get tables: %v", err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}
	totalCapacity := domain.TotalCapacity(tables)

	// 6. Брони дня по точке, отменённые не занимают места
	shifts, err := uc.shiftRepo.GetWithFilter(ctx, domain.ShiftsFilter{
		CompanyCode:      req.CompanyCode,
		UnitBusiness:     &req.UnitBusiness,
		Date:             &req.Date,
		ExcludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableShifts: failed to get shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to get shifts: %v", ErrInternal, err)
	}

	// 7. Вычитаем занятость из каждого слота
	result := applyOccupancy(slots, totalCapacity, shifts)

	uc.logger.Info("GetAvailableShifts: %d slots, capacity=%d, shifts=%d",
		len(result), totalCapacity, len(shifts))

	return &Response{Date: req.Date, Slots: result}, nil
}
