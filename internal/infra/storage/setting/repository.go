package setting

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const settingColumns = `id, code, scope, data_type, name, value, description, company_code, created_at, updated_at`

// Repository репозиторий для работы с настройками компаний.
// Значение настройки хранится в JSONB и десериализуется в interface{}.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateMany создает набор настроек одним запросом.
// Используется при регистрации компании для посева набора по умолчанию,
// поэтому вызывается внутри транзакции вместе с созданием компании.
func (r *Repository) CreateMany(ctx context.Context, settings []*domain.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("company_settings").
		Columns("code", "scope", "data_type", "name", "value", "description", "company_code")

	for _, s := range settings {
		value, err := json.Marshal(s.Value)
		if err != nil {
			return fmt.Errorf("%w: CreateMany - marshal value for %s: %v", ErrEncodeValue, s.Code, err)
		}
		insertBuilder = insertBuilder.Values(s.Code, s.Scope, s.DataType, s.Name, value, s.Description, s.CompanyCode)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateMany - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateMany - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByCompany получает все настройки компании
func (r *Repository) GetByCompany(ctx context.Context, companyCode string) ([]*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns).
		From("company_settings").
		Where(squirrel.Eq{"company_code": companyCode}).
		OrderBy("code ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCompany - scan row: %v", ErrScanRow, err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// GetByCode получает настройку компании по коду
func (r *Repository) GetByCode(ctx context.Context, companyCode, code string) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns).
		From("company_settings").
		Where(squirrel.Eq{"company_code": companyCode, "code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSetting(row)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan setting: %v", ErrScanRow, err)
	}

	return s, nil
}

// Update обновляет значение настройки
func (r *Repository) Update(ctx context.Context, s *domain.Setting) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	value, err := json.Marshal(s.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - marshal value for %s: %v", ErrEncodeValue, s.Code, err)
	}

	query, args, err := psqlbuilder.Update("company_settings").
		Set("value", value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"company_code": s.CompanyCode, "code": s.Code}).
		Suffix("RETURNING id, scope, data_type, name, description, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Scope,
		&s.DataType,
		&s.Name,
		&s.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSetting(row rowScanner) (*domain.Setting, error) {
	var s domain.Setting
	var rawValue []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Code,
		&s.Scope,
		&s.DataType,
		&s.Name,
		&rawValue,
		&s.Description,
		&s.CompanyCode,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(rawValue) > 0 {
		if err := json.Unmarshal(rawValue, &s.Value); err != nil {
			return nil, fmt.Errorf("unmarshal value for %s: %v", s.Code, err)
		}
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
