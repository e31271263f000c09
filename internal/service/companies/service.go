package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	companyRepo "github.com/m04kA/SMC-ShiftService/internal/infra/storage/company"
	"github.com/m04kA/SMC-ShiftService/internal/service/companies/models"
)

// Service сервис для работы с компаниями
type Service struct {
	companyRepo CompanyRepository
	seeder      SettingsSeeder
	txManager   TxManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(
	companyRepo CompanyRepository,
	seeder SettingsSeeder,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		companyRepo: companyRepo,
		seeder:      seeder,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create регистрирует новую компанию.
// Компания и её набор настроек по умолчанию создаются в одной транзакции:
// либо компания появляется полностью настроенной, либо не появляется вовсе.
func (s *Service) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.CompanyResponse, error) {
	if err := validateCompanyData(req.Code, req.CompanyName); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	company := &domain.Company{
		Code:          req.Code,
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		Email:         req.Email,
		CompanyNumber: req.CompanyNumber,
		Type:          req.Type,
		Cellphone:     req.Cellphone,
		Active:        true,
		Instagram:     req.Instagram,
		Facebook:      req.Facebook,
		Twitter:       req.Twitter,
		Alias:         req.Alias,
		Cuit:          req.Cuit,
		AccountName:   req.AccountName,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.companyRepo.Create(txCtx, company)
		if err != nil {
			return err
		}
		company = created

		return s.seeder.SeedDefaults(txCtx, company.Code)
	})

	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyExists) {
			s.logger.Warn("Create: company code=%s already exists", req.Code)
			return nil, ErrCompanyExists
		}
		s.logger.Error("Create: failed to register company code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Create - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: company code=%s registered with default settings", company.Code)
	return models.FromDomainCompany(company), nil
}

// Get возвращает компанию по коду
func (s *Service) Get(ctx context.Context, code string) (*models.CompanyResponse, error) {
	company, err := s.companyRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Get: company code=%s not found", code)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompany(company), nil
}

// Update обновляет данные компании
func (s *Service) Update(ctx context.Context, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error) {
	if err := validateCompanyData(req.Code, req.CompanyName); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	company := &domain.Company{
		Code:          req.Code,
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		Email:         req.Email,
		CompanyNumber: req.CompanyNumber,
		Type:          req.Type,
		Cellphone:     req.Cellphone,
		Active:        req.Active,
		Instagram:     req.Instagram,
		Facebook:      req.Facebook,
		Twitter:       req.Twitter,
		Alias:         req.Alias,
		Cuit:          req.Cuit,
		AccountName:   req.AccountName,
	}

	updated, err := s.companyRepo.Update(ctx, company)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			s.logger.Warn("Update: company code=%s not found", req.Code)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: company code=%s updated", updated.Code)
	return models.FromDomainCompany(updated), nil
}

func validateCompanyData(code, companyName string) error {
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if companyName == "" {
		return fmt.Errorf("%w: companyName is required", ErrInvalidInput)
	}
	return nil
}
