package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	tableRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/table"
	"github.com/m04kA/SMC-ShiftService/internal/service/tables/models"
)

// Service сервис для работы со столами
type Service struct {
	tableRepo TableRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(tableRepo TableRepository, logger Logger) *Service {
	return &Service{
		tableRepo: tableRepo,
		logger:    logger,
	}
}

// Create создает новый стол
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	if err := validateTableData(req.Number, req.Capacity, req.UnitBusiness); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	table := &domain.Table{
		Number:       req.Number,
		Capacity:     req.Capacity,
		Description:  req.Description,
		UnitBusiness: req.UnitBusiness,
		CompanyCode:  req.CompanyCode,
		Active:       active,
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableExists) {
			s.logger.Warn("Create: duplicate table number=%d unit=%s company=%s", req.Number, req.UnitBusiness, req.CompanyCode)
			return nil, ErrTableExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d number=%d created for company=%s", created.ID, created.Number, created.CompanyCode)
	return models.FromDomainTable(created), nil
}

// List возвращает все столы компании
func (s *Service) List(ctx context.Context, companyCode string) ([]*models.TableResponse, error) {
	tables, err := s.tableRepo.GetByCompany(ctx, companyCode)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTables(tables), nil
}

// Update обновляет стол
func (s *Service) Update(ctx context.Context, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if err := validateTableData(req.Number, req.Capacity, req.UnitBusiness); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	table := &domain.Table{
		ID:           req.ID,
		Number:       req.Number,
		Capacity:     req.Capacity,
		Description:  req.Description,
		UnitBusiness: req.UnitBusiness,
		CompanyCode:  req.CompanyCode,
		Active:       req.Active,
	}

	updated, err := s.tableRepo.Update(ctx, table)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", req.ID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: table id=%d updated", updated.ID)
	return models.FromDomainTable(updated), nil
}

// Delete удаляет стол
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	err := s.tableRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Delete: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: table id=%d deleted", id)
	return nil
}

func validateTableData(number, capacity int, unitBusiness string) error {
	if number <= 0 {
		return fmt.Errorf("%w: number must be positive", ErrInvalidInput)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if unitBusiness == "" {
		return fmt.Errorf("%w: unitBusiness is required", ErrInvalidInput)
	}
	return nil
}
