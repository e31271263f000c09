package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	settingRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/setting"
	"github.com/m04kA/SMC-ShiftService/internal/service/settings/models"
)

// Service сервис для работы с настройками компаний.
// Помимо CRUD отдает типизированные значения отдельных настроек,
// именно через него use case'ы получают длительность турно, расписание
// дня и флаг повторной валидации при редактировании.
type Service struct {
	settingRepo SettingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingRepo SettingRepository, logger Logger) *Service {
	return &Service{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// List возвращает все настройки компании
func (s *Service) List(ctx context.Context, companyCode string) ([]*models.SettingResponse, error) {
	settings, err := s.settingRepo.GetByCompany(ctx, companyCode)
	if err != nil {
		s.logger.Error("List: failed to get settings for company=%s: %v", companyCode, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update обновляет значение настройки.
// Значение приводится к объявленному типу настройки: числа приходят и
// числом, и строкой, хранится всегда целое.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	current, err := s.settingRepo.GetByCode(ctx, req.CompanyCode, req.Code)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			s.logger.Warn("Update: setting %s not found for company=%s", req.Code, req.CompanyCode)
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Update: failed to get setting %s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	value, err := domain.CoerceValue(current.DataType, req.Value)
	if err != nil {
		s.logger.Warn("Update: invalid value for setting %s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	current.Value = value
	updated, err := s.settingRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return nil, ErrSettingNotFound
		}
		s.logger.Error("Update: failed to update setting %s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: setting %s updated for company=%s", req.Code, req.CompanyCode)
	return models.FromDomainSetting(updated), nil
}

// SeedDefaults создает набор настроек по умолчанию для новой компании.
// Вызывается сервисом компаний внутри транзакции регистрации.
func (s *Service) SeedDefaults(ctx context.Context, companyCode string) error {
	if err := s.settingRepo.CreateMany(ctx, domain.DefaultCompanySettings(companyCode)); err != nil {
		s.logger.Error("SeedDefaults: failed to seed settings for company=%s: %v", companyCode, err)
		return fmt.Errorf("%w: SeedDefaults - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ShiftDuration возвращает длительность турно в минутах.
// При отсутствии настройки используется значение по умолчанию.
func (s *Service) ShiftDuration(ctx context.Context, companyCode string) (int, error) {
	setting, err := s.settingRepo.GetByCode(ctx, companyCode, domain.CodeDurationShift)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return domain.DefaultShiftDurationMinutes, nil
		}
		return 0, fmt.Errorf("%w: ShiftDuration - repository error: %v", ErrInternal, err)
	}

	duration, err := setting.IntValue()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%w: durationShift must be positive, got %d", ErrInvalidValue, duration)
	}

	return duration, nil
}

// DaySchedule возвращает строку диапазонов работы на день недели,
// например "09:00-18:00" или "09:00-13:00, 17:00-22:00".
func (s *Service) DaySchedule(ctx context.Context, companyCode string, weekday time.Weekday) (string, error) {
	setting, err := s.settingRepo.GetByCode(ctx, companyCode, domain.ScheduleDayCode(weekday))
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return "", ErrScheduleNotConfigured
		}
		return "", fmt.Errorf("%w: DaySchedule - repository error: %v", ErrInternal, err)
	}

	schedule, err := setting.StringValue()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	return schedule, nil
}

// ValidateShiftUpdates возвращает флаг повторной валидации вместимости
// при редактировании существующего турно. По умолчанию выключен:
// редактирование проходит без проверки, как и исторически.
func (s *Service) ValidateShiftUpdates(ctx context.Context, companyCode string) (bool, error) {
	setting, err := s.settingRepo.GetByCode(ctx, companyCode, domain.CodeValidateShiftUpdates)
	if err != nil {
		if errors.Is(err, settingRepo.ErrSettingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: ValidateShiftUpdates - repository error: %v", ErrInternal, err)
	}

	enabled, err := setting.BoolValue()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	return enabled, nil
}
