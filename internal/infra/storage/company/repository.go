package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const companyColumns = `id, code, company_name, address, email, company_number, type, cellphone,
active, instagram, facebook, twitter, alias, cuit, account_name, created_at, updated_at`

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с компаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую компанию.
// Код компании уникален: повторная регистрация возвращает ErrCompanyExists.
func (r *Repository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companies").
		Columns(
			"code",
			"company_name",
			"address",
			"email",
			"company_number",
			"type",
			"cellphone",
			"active",
			"instagram",
			"facebook",
			"twitter",
			"alias",
			"cuit",
			"account_name",
		).
		Values(
			c.Code,
			c.CompanyName,
			c.Address,
			c.Email,
			c.CompanyNumber,
			c.Type,
			c.Cellphone,
			c.Active,
			c.Instagram,
			c.Facebook,
			c.Twitter,
			c.Alias,
			c.Cuit,
			c.AccountName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrCompanyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByCode получает компанию по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns).
		From("companies").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	c, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan company: %v", ErrScanRow, err)
	}

	return c, nil
}

// Update обновляет компанию по коду
func (r *Repository) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("companies").
		Set("company_name", c.CompanyName).
		Set("address", c.Address).
		Set("email", c.Email).
		Set("company_number", c.CompanyNumber).
		Set("type", c.Type).
		Set("cellphone", c.Cellphone).
		Set("active", c.Active).
		Set("instagram", c.Instagram).
		Set("facebook", c.Facebook).
		Set("twitter", c.Twitter).
		Set("alias", c.Alias).
		Set("cuit", c.Cuit).
		Set("account_name", c.AccountName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": c.Code}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.CompanyName,
		&c.Address,
		&c.Email,
		&c.CompanyNumber,
		&c.Type,
		&c.Cellphone,
		&c.Active,
		&c.Instagram,
		&c.Facebook,
		&c.Twitter,
		&c.Alias,
		&c.Cuit,
		&c.AccountName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
