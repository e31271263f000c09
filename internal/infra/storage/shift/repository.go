package shift

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShiftService/pkg/psqlbuilder"
)

const shiftColumns = `id, company_code, date, time_start, time_end, status, client,
unit_business, table_number, people_qty, phone_number, email, description, notificated,
created_at, updated_at`

// Repository репозиторий для работы с бронями (турносами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь.
// Если в контексте передана активная транзакция, использует её: так
// проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции use case'а создания брони.
func (r *Repository) Create(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("shifts").
		Columns(
			"company_code",
			"date",
			"time_start",
			"time_end",
			"status",
			"client",
			"unit_business",
			"table_number",
			"people_qty",
			"phone_number",
			"email",
			"description",
			"notificated",
		).
		Values(
			s.CompanyCode,
			s.Date,
			s.TimeStart,
			s.TimeEnd,
			s.Status,
			s.Client,
			s.UnitBusiness,
			s.TableNumber,
			s.PeopleQty,
			s.PhoneNumber,
			s.Email,
			s.Description,
			s.Notificated,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shiftColumns).
		From("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanShift(row)
	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shift: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetWithFilter получает брони с гибкой фильтрацией.
//
// Примеры использования:
//
//  1. Брони компании на день:
//     filter := domain.ShiftsFilter{CompanyCode: "cafe", Date: &date}
//
//  2. Брони точки на конкретный слот (для проверки вместимости):
//     filter := domain.ShiftsFilter{CompanyCode: "cafe", UnitBusiness: &unit, Date: &date, TimeStart: &slot}
//
//  3. Брони за месяц (для статистики):
//     filter := domain.ShiftsFilter{CompanyCode: "cafe", StartDate: &first, EndDate: &last}
//
// При выборке конкретного слота внутри транзакции добавляется FOR UPDATE:
// это блокирует слот на время проверки вместимости при создании брони.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ShiftsFilter) ([]*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shiftColumns).
		From("shifts").
		Where(squirrel.Eq{"company_code": filter.CompanyCode})

	if filter.UnitBusiness != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"unit_business": *filter.UnitBusiness})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	if filter.TimeStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"time_start": *filter.TimeStart})
	}

	if filter.ExcludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("date ASC, time_start ASC, id ASC")

	// Блокировка слота при проверке вместимости в транзакции
	if dbmetrics.IsInTransaction(ctx) && filter.TimeStart != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// Update обновляет бронь целиком
func (r *Repository) Update(ctx context.Context, s *domain.Shift) (*domain.Shift, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("shifts").
		Set("date", s.Date).
		Set("time_start", s.TimeStart).
		Set("time_end", s.TimeEnd).
		Set("status", s.Status).
		Set("client", s.Client).
		Set("unit_business", s.UnitBusiness).
		Set("table_number", s.TableNumber).
		Set("people_qty", s.PeopleQty).
		Set("phone_number", s.PhoneNumber).
		Set("email", s.Email).
		Set("description", s.Description).
		Set("notificated", s.Notificated).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "company_code": s.CompanyCode}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrShiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Delete удаляет бронь
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shifts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrShiftNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShift(row rowScanner) (*domain.Shift, error) {
	var s domain.Shift
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.CompanyCode,
		&s.Date,
		&s.TimeStart,
		&s.TimeEnd,
		&s.Status,
		&s.Client,
		&s.UnitBusiness,
		&s.TableNumber,
		&s.PeopleQty,
		&s.PhoneNumber,
		&s.Email,
		&s.Description,
		&s.Notificated,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanShifts(rows *sql.Rows) ([]*domain.Shift, error) {
	shifts := make([]*domain.Shift, 0)

	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanShifts - scan row: %v", ErrScanRow, err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanShifts - rows error: %v", ErrScanRow, err)
	}

	return shifts, nil
}
